// Package export gera as planilhas baixadas pelo painel de estratégia.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/corbanhub/gestao-api/internal/application/dto"
)

// Abas da planilha de evolução, na ordem de exibição do painel.
var abasEvolucao = []struct {
	Nome   string
	Linhas func(*dto.EvolucaoResponse) []dto.EvolucaoLinha
}{
	{"Zeraram", func(r *dto.EvolucaoResponse) []dto.EvolucaoLinha { return r.Zeraram }},
	{"Novas", func(r *dto.EvolucaoResponse) []dto.EvolucaoLinha { return r.Novas }},
	{"Voltaram", func(r *dto.EvolucaoResponse) []dto.EvolucaoLinha { return r.Voltaram }},
	{"Estáveis", func(r *dto.EvolucaoResponse) []dto.EvolucaoLinha { return r.Estaveis }},
}

var cabecalhoEvolucao = []string{
	"Chave Loja", "Nome Loja", "CNPJ", "Contato", "Telefone",
	"M-2", "M-1", "M0", "Variação (%)",
}

// EvolucaoXLSX monta a planilha com uma aba por visão da análise.
func EvolucaoXLSX(produto string, evolucao *dto.EvolucaoResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("export: criar estilo: %w", err)
	}

	for i, aba := range abasEvolucao {
		nome := aba.Nome
		if i == 0 {
			// a primeira aba reaproveita a Sheet1 criada pelo NewFile
			if err := f.SetSheetName("Sheet1", nome); err != nil {
				return nil, fmt.Errorf("export: renomear aba: %w", err)
			}
		} else {
			if _, err := f.NewSheet(nome); err != nil {
				return nil, fmt.Errorf("export: criar aba %s: %w", nome, err)
			}
		}
		if err := preencherAba(f, nome, estiloCabecalho, aba.Linhas(evolucao)); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: gravar planilha de %s: %w", produto, err)
	}
	return buf.Bytes(), nil
}

func preencherAba(f *excelize.File, aba string, estiloCabecalho int, linhas []dto.EvolucaoLinha) error {
	for col, titulo := range cabecalhoEvolucao {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(aba, cell, titulo); err != nil {
			return err
		}
	}
	fim, err := excelize.CoordinatesToCellName(len(cabecalhoEvolucao), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(aba, "A1", fim, estiloCabecalho); err != nil {
		return err
	}

	for i, l := range linhas {
		linha := i + 2
		valores := []interface{}{
			l.ChaveLoja, l.NomeLoja, l.CNPJ, l.NomeContato, l.Telefone,
			l.MesM2, l.MesM1, l.MesM0,
		}
		if l.Variacao != nil {
			valores = append(valores, *l.Variacao)
		} else {
			valores = append(valores, "")
		}
		for col, v := range valores {
			cell, err := excelize.CoordinatesToCellName(col+1, linha)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(aba, cell, v); err != nil {
				return err
			}
		}
	}

	// larguras amigáveis para leitura sem ajuste manual
	if err := f.SetColWidth(aba, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(aba, "B", "B", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(aba, "C", "E", 20); err != nil {
		return err
	}
	return f.SetColWidth(aba, "F", "I", 12)
}
