package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corbanhub/gestao-api/internal/domain/tendencia"
)

// LojaResponse loja exibida nas tabelas de estratégia.
type LojaResponse struct {
	ChaveLoja   string `json:"chaveLoja"`
	CNPJ        string `json:"cnpj"`
	NomeLoja    string `json:"nomeLoja"`
	NomePDV     string `json:"nomePdv,omitempty"`
	Situacao    string `json:"situacao"`
	Endereco    string `json:"endereco,omitempty"`
	Telefone    string `json:"telefoneLoja,omitempty"`
	NomeContato string `json:"nomeContato,omitempty"`

	ProdutosHabilitados ProdutosHabilitadosDTO `json:"produtosHabilitados"`

	SaldoCx decimal.Decimal `json:"saldoCx"`
	Limite  decimal.Decimal `json:"limite"`

	DataInauguracao  *time.Time `json:"dataInauguracao,omitempty"`
	DataCertificacao *time.Time `json:"dataCertificacao,omitempty"`
	DataUltTransacao *time.Time `json:"dataUltTransacao,omitempty"`
	DataBloqueio     *time.Time `json:"dataBloqueio,omitempty"`
	MotivoBloqueio   string     `json:"motivoBloqueio,omitempty"`
	SituacaoTablet   string     `json:"situacaoTablet,omitempty"`

	DescSupervisao    string `json:"descSupervisao,omitempty"`
	DescCoordenacao   string `json:"descCoordenacao,omitempty"`
	DescGerenciaArea  string `json:"descGerenciaArea,omitempty"`
	GerenciaRegional  string `json:"gerenciaRegional,omitempty"`
	DiretoriaRegional string `json:"diretoriaRegional,omitempty"`
	AgRelacionamento  string `json:"agRelacionamento,omitempty"`
	Multiplicador     string `json:"multiplicadorResponsavel,omitempty"`
}

// ProdutosHabilitadosDTO flags de produto da loja.
type ProdutosHabilitadosDTO struct {
	Consignado   bool `json:"consignado"`
	Microsseguro bool `json:"microsseguro"`
	Lime         bool `json:"lime"`
	Conta        bool `json:"conta"`
}

// LojaProducaoResponse loja com a janela mensal do produto.
type LojaProducaoResponse struct {
	LojaResponse
	MesM3 int `json:"mesM3"`
	MesM2 int `json:"mesM2"`
	MesM1 int `json:"mesM1"`
	MesM0 int `json:"mesM0"`

	DataUltAbertura *time.Time `json:"dataUltAbertura,omitempty"`
	Tendencia       string     `json:"tendencia"`
}

// EvolucaoLinha linha das abas da análise de evolução. A variação só é
// preenchida na aba de estáveis (M1 > 0 garantido pela própria visão).
type EvolucaoLinha struct {
	ChaveLoja   string   `json:"chaveLoja"`
	NomeLoja    string   `json:"nomeLoja"`
	CNPJ        string   `json:"cnpj"`
	NomeContato string   `json:"nomeContato,omitempty"`
	Telefone    string   `json:"telefoneLoja,omitempty"`
	MesM2       int      `json:"mesM2"`
	MesM1       int      `json:"mesM1"`
	MesM0       int      `json:"mesM0"`
	Variacao    *float64 `json:"variacao,omitempty"`
}

// EvolucaoResponse as quatro visões da análise, com seus totais.
// As listas podem se sobrepor (Novas/Voltaram); os totais são independentes.
type EvolucaoResponse struct {
	Zeraram  []EvolucaoLinha `json:"zeraram"`
	Novas    []EvolucaoLinha `json:"novas"`
	Voltaram []EvolucaoLinha `json:"voltaram"`
	Estaveis []EvolucaoLinha `json:"estaveis"`

	TotalZeraram  int `json:"totalZeraram"`
	TotalNovas    int `json:"totalNovas"`
	TotalVoltaram int `json:"totalVoltaram"`
	TotalEstaveis int `json:"totalEstaveis"`
}

// MetricasResponse resumo agregado da estratégia mais metadados do pedido.
type MetricasResponse struct {
	tendencia.Resumo

	Produto string `json:"produto"`
	Papel   string `json:"userRole"`
	Chave   int64  `json:"userChave"`
}
