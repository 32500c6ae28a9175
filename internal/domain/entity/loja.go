package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situações possíveis de uma loja.
const (
	SituacaoAtiva      = "ativa"
	SituacaoBloqueada  = "bloqueada"
	SituacaoEncerrando = "encerrando"
)

// ProdutosHabilitados flags de produto liberados para a loja.
type ProdutosHabilitados struct {
	Consignado   bool
	Microsseguro bool
	Lime         bool
	Conta        bool
}

// Loja representa um ponto correspondente bancário.
type Loja struct {
	ChaveLoja string
	CNPJ      string
	NomeLoja  string
	NomePDV   string
	Situacao  string

	Endereco    string
	Telefone    string
	NomeContato string

	Produtos ProdutosHabilitados

	// Saldo de caixa e limite operacional do ponto.
	SaldoCx decimal.Decimal
	Limite  decimal.Decimal

	DataInauguracao    *time.Time
	DataCertificacao   *time.Time
	DataUltTransacao   *time.Time
	DataBloqueio       *time.Time
	MotivoBloqueio     string
	SituacaoTablet     string

	// Chaves e descrições da cadeia de supervisão no datawarehouse.
	ChaveSupervisao    int64
	DescSupervisao     string
	ChaveCoordenacao   int64
	DescCoordenacao    string
	ChaveGerenciaArea  int64
	DescGerenciaArea   string
	GerenciaRegional   string
	DiretoriaRegional  string
	AgRelacionamento   string
	CodAgRelacionamento string
	Multiplicador      string
}

// ProducaoMensal janela móvel de produção de uma loja para um produto.
// MesM3 é o mês mais antigo; MesM0 o mês corrente. Contagens nunca negativas.
type ProducaoMensal struct {
	ChaveLoja string
	Produto   string // credito, abertura-conta, seguro, pontos-ativos
	MesM3     int
	MesM2     int
	MesM1     int
	MesM0     int

	DataUltAbertura *time.Time
}
