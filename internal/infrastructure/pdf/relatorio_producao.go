// Package pdf gera o relatório de produção da estratégia comercial.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + produto  │  Data de emissão               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: contas M0/M1, crescimento, produtividade, média    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Loja | CNPJ | M-3 | M-2 | M-1 | M0 | Tendência     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/corbanhub/gestao-api/internal/application/dto"
)

var (
	corPrimaria = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Nomes exibidos por produto no cabeçalho do relatório.
var nomesProduto = map[string]string{
	"credito":           "Crédito",
	"abertura-conta":    "Abertura de Conta",
	"seguro":            "Seguro",
	"pontos-ativos":     "Pontos Ativos",
	"pontos-bloqueados": "Pontos Bloqueados",
}

// RelatorioProducaoGenerator gera o PDF do relatório usando Maroto v2.
type RelatorioProducaoGenerator struct{}

func NewRelatorioProducaoGenerator() *RelatorioProducaoGenerator {
	return &RelatorioProducaoGenerator{}
}

// Gerar monta o relatório do produto com o resumo e a tabela de lojas.
func (g *RelatorioProducaoGenerator) Gerar(
	_ context.Context,
	produto string,
	metricas *dto.MetricasResponse,
	lojas []dto.LojaProducaoResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Produção", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(produto))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(resumoRows(metricas)...)
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaLojaRows(lojas) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabecalhoRow(produto string) core.Row {
	nome := nomesProduto[produto]
	if nome == "" {
		nome = produto
	}
	emissao := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE PRODUÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Estratégia: "+nome, props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+emissao, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: corCinza,
			}),
		),
	)
}

// resumoRows: cartões agregados em duas linhas de quatro colunas.
func resumoRows(m *dto.MetricasResponse) []core.Row {
	cartao := func(titulo, valor string) core.Col {
		return col.New(3).Add(
			text.New(titulo, props.Text{Size: 7, Color: corCinza, Top: 1}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			cartao("Contas M0", fmt.Sprintf("%d", m.TotalContasM0)),
			cartao("Contas M-1", fmt.Sprintf("%d", m.TotalContasM1)),
			cartao("Crescimento", fmt.Sprintf("%.1f%%", m.CrescimentoPercentual)),
			cartao("Média por loja", fmt.Sprintf("%d", m.MediaPorLoja)),
		),
		row.New(12).Add(
			cartao("Lojas ativas", fmt.Sprintf("%d/%d", m.LojasComProducaoM0, m.TotalLojas)),
			cartao("Zeraram", fmt.Sprintf("%d", m.LojasQueZeraram)),
			cartao("Novas", fmt.Sprintf("%d", m.LojasNovas)),
			cartao("Voltaram", fmt.Sprintf("%d", m.LojasQueVoltaram)),
		),
	}
}

func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Loja", 4, align.Left),
		h("CNPJ", 3, align.Left),
		h("M-3", 1, align.Center),
		h("M-2", 1, align.Center),
		h("M-1", 1, align.Center),
		h("M0", 1, align.Center),
		h("Tendência", 1, align.Center),
	)
}

func tabelaLojaRows(lojas []dto.LojaProducaoResponse) []core.Row {
	out := make([]core.Row, 0, len(lojas))
	for _, l := range lojas {
		num := func(v int) core.Col {
			return col.New(1).Add(text.New(
				fmt.Sprintf("%d", v),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			))
		}
		out = append(out, row.New(7).Add(
			col.New(4).Add(text.New(l.NomeLoja, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(l.CNPJ, props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			num(l.MesM3), num(l.MesM2), num(l.MesM1), num(l.MesM0),
			col.New(1).Add(text.New(l.Tendencia, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: corCinza,
			})),
		))
	}
	return out
}
