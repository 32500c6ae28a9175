// Package tendencia classifica a evolução de produção das lojas a partir da
// janela móvel de quatro meses (M3 mais antigo .. M0 corrente).
package tendencia

import (
	"fmt"

	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// Serie janela de contagens mensais de uma loja.
type Serie struct {
	ChaveLoja string
	M3        int
	M2        int
	M1        int
	M0        int
}

// SerieDe extrai a janela de uma produção mensal.
func SerieDe(p entity.ProducaoMensal) Serie {
	return Serie{ChaveLoja: p.ChaveLoja, M3: p.MesM3, M2: p.MesM2, M1: p.MesM1, M0: p.MesM0}
}

// Filtros das quatro visões da análise de evolução. São INDEPENDENTES por
// contrato com o painel: uma loja com M2>0, M1=0 e M0>0 conta como Nova E
// como Voltou (ver nota em Classificacao).

// Zerou: produziu no mês anterior e zerou no corrente.
func (s Serie) Zerou() bool { return s.M1 > 0 && s.M0 == 0 }

// Nova: primeira produção no mês corrente.
func (s Serie) Nova() bool { return s.M1 == 0 && s.M0 > 0 }

// Voltou: retomou produção após um mês zerado.
func (s Serie) Voltou() bool { return s.M2 > 0 && s.M1 == 0 && s.M0 > 0 }

// Estavel: manteve produção nos dois últimos meses.
func (s Serie) Estavel() bool { return s.M1 > 0 && s.M0 > 0 }

// Classificacao listas das quatro visões, na ordem de entrada das lojas.
//
// As listas NÃO são mutuamente exclusivas: os totais do painel são quatro
// filtros independentes, e o comportamento de sobreposição (Nova/Voltou) é
// contrato com os dados históricos exibidos — não "corrigir" para um switch
// de precedência única.
type Classificacao struct {
	Zeraram  []Serie
	Novas    []Serie
	Voltaram []Serie
	Estaveis []Serie
}

// ClassificarTodas aplica os quatro filtros preservando a ordem de entrada.
func ClassificarTodas(series []Serie) Classificacao {
	var c Classificacao
	for _, s := range series {
		if s.Zerou() {
			c.Zeraram = append(c.Zeraram, s)
		}
		if s.Nova() {
			c.Novas = append(c.Novas, s)
		}
		if s.Voltou() {
			c.Voltaram = append(c.Voltaram, s)
		}
		if s.Estavel() {
			c.Estaveis = append(c.Estaveis, s)
		}
	}
	return c
}

// VariacaoPercentual variação (M0-M1)/M1*100 da visão de lojas estáveis.
// M1 zerado não ocorre dentro da visão por definição, mas a guarda existe
// para nunca propagar NaN ao painel.
func (s Serie) VariacaoPercentual() (float64, error) {
	if s.M1 == 0 {
		return 0, fmt.Errorf("%w: loja %s", domain.ErrDivisaoPorZero, s.ChaveLoja)
	}
	return float64(s.M0-s.M1) / float64(s.M1) * 100, nil
}

// Tendência por loja usada nos cartões de métricas. Diferente das quatro
// visões acima, aqui cada loja cai em exatamente uma categoria.
const (
	TendenciaQueda     = "queda"
	TendenciaAtencao   = "atencao"
	TendenciaComecando = "comecando"
	TendenciaEstavel   = "estavel"
)

// Tendencia classifica a loja em uma única categoria:
//
//	queda     -> zerou tendo produzido, ou variação <= -30%;
//	atencao   -> queda moderada (-30% < v <= -5%), ou dois meses zerados com
//	             produção em M2 (volatilidade);
//	comecando -> crescimento >= +10%, ou retomada após mês zerado;
//	estavel   -> o restante (variação entre -5% e +10%).
//
// A variação usa 0 quando M1 = 0, espelhando o cálculo protegido do painel.
func (s Serie) Tendencia() string {
	variacao := 0.0
	if s.M1 > 0 {
		variacao = float64(s.M0-s.M1) / float64(s.M1) * 100
	}

	switch {
	case (s.M0 == 0 && s.M1 > 0) || variacao <= -30:
		return TendenciaQueda
	case (variacao > -30 && variacao <= -5) || (s.M0 == 0 && s.M1 == 0 && s.M2 > 0):
		return TendenciaAtencao
	case variacao >= 10 || (s.M0 > 0 && s.M1 == 0):
		return TendenciaComecando
	default:
		return TendenciaEstavel
	}
}

// ContagemTendencias total de lojas por categoria de tendência.
type ContagemTendencias struct {
	Comecando int `json:"comecando"`
	Estavel   int `json:"estavel"`
	Atencao   int `json:"atencao"`
	Queda     int `json:"queda"`
}

// ContarTendencias agrega a tendência de cada série.
func ContarTendencias(series []Serie) ContagemTendencias {
	var c ContagemTendencias
	for _, s := range series {
		switch s.Tendencia() {
		case TendenciaQueda:
			c.Queda++
		case TendenciaAtencao:
			c.Atencao++
		case TendenciaComecando:
			c.Comecando++
		default:
			c.Estavel++
		}
	}
	return c
}

// Resumo métricas agregadas de uma estratégia, como exibidas nos cartões.
type Resumo struct {
	TotalContasM0 int `json:"totalContasM0"`
	TotalContasM1 int `json:"totalContasM1"`
	VariacaoTotal int `json:"variacaoTotal"`

	TotalLojas          int `json:"totalLojas"`
	LojasComProducaoM0  int `json:"lojasComProducaoM0"`
	LojasComProducaoM1  int `json:"lojasComProducaoM1"`
	LojasQueZeraram     int `json:"lojasQueZeraram"`
	LojasNovas          int `json:"lojasNovas"`
	LojasQueVoltaram    int `json:"lojasQueVoltaram"`
	LojasEstaveisAtivas int `json:"lojasEstaveisAtivas"`
	LojasQuedaProducao  int `json:"lojasQuedaProducao"`
	LojasSemMovimento   int `json:"lojasSemMovimento"`

	CrescimentoPercentual float64 `json:"crescimentoPercentual"`
	ProdutividadeGeral    float64 `json:"produtividadeGeral"`
	MediaPorLoja          int     `json:"mediaPorLoja"`

	Tendencias ContagemTendencias `json:"tendencias"`
}

// Resumir calcula o resumo agregado de uma lista de séries.
// Percentuais e média são protegidos contra denominador zero (devolvem 0).
func Resumir(series []Serie) Resumo {
	r := Resumo{TotalLojas: len(series)}
	for _, s := range series {
		r.TotalContasM0 += s.M0
		r.TotalContasM1 += s.M1
		if s.M0 > 0 {
			r.LojasComProducaoM0++
		}
		if s.M1 > 0 {
			r.LojasComProducaoM1++
		}
		if s.Zerou() {
			r.LojasQueZeraram++
		}
		if s.Nova() {
			r.LojasNovas++
		}
		if s.Voltou() {
			r.LojasQueVoltaram++
		}
		if s.Estavel() {
			r.LojasEstaveisAtivas++
		}
		if s.M0 < s.M1 {
			r.LojasQuedaProducao++
		}
		if s.M0 == 0 {
			r.LojasSemMovimento++
		}
	}
	r.VariacaoTotal = r.TotalContasM0 - r.TotalContasM1

	if r.TotalContasM1 > 0 {
		r.CrescimentoPercentual = float64(r.VariacaoTotal) / float64(r.TotalContasM1) * 100
	}
	if r.TotalLojas > 0 {
		r.ProdutividadeGeral = float64(r.LojasComProducaoM0) / float64(r.TotalLojas) * 100
	}
	if r.LojasComProducaoM0 > 0 {
		media := float64(r.TotalContasM0) / float64(r.LojasComProducaoM0)
		r.MediaPorLoja = int(media + 0.5)
	}

	r.Tendencias = ContarTendencias(series)
	return r
}
