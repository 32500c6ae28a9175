package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.LojaRepository = (*LojaRepo)(nil)

// LojaRepo adaptador PostgreSQL para lojas e produção mensal.
type LojaRepo struct {
	db DBTX
}

func NewLojaRepository(db DBTX) *LojaRepo {
	return &LojaRepo{db: db}
}

const colunasLoja = `
	l.chave_loja, l.cnpj, l.nome_loja, COALESCE(l.nome_pdv, ''), l.situacao,
	COALESCE(l.endereco, ''), COALESCE(l.telefone, ''), COALESCE(l.nome_contato, ''),
	l.prod_consignado, l.prod_microsseguro, l.prod_lime, l.prod_conta,
	l.saldo_cx, l.limite,
	l.data_inauguracao, l.data_certificacao, l.data_ult_transacao, l.data_bloqueio,
	COALESCE(l.motivo_bloqueio, ''), COALESCE(l.situacao_tablet, ''),
	COALESCE(l.chave_supervisao, 0), COALESCE(l.desc_supervisao, ''),
	COALESCE(l.chave_coordenacao, 0), COALESCE(l.desc_coordenacao, ''),
	COALESCE(l.chave_gerencia_area, 0), COALESCE(l.desc_gerencia_area, ''),
	COALESCE(l.gerencia_regional, ''), COALESCE(l.diretoria_regional, ''),
	COALESCE(l.ag_relacionamento, ''), COALESCE(l.cod_ag_relacionamento, ''),
	COALESCE(l.multiplicador_responsavel, '')`

// colunaRecorte devolve a coluna de filtro conforme o papel. Admin não
// filtra (coluna vazia).
func colunaRecorte(filtro repository.FiltroHierarquia) (string, error) {
	switch filtro.Papel {
	case hierarquia.PapelAdmin:
		return "", nil
	case hierarquia.PapelGerente:
		return "l.chave_gerencia_area", nil
	case hierarquia.PapelCoordenador:
		return "l.chave_coordenacao", nil
	case hierarquia.PapelSupervisor:
		return "l.chave_supervisao", nil
	default:
		return "", fmt.Errorf("papel %q sem recorte de lojas", filtro.Papel)
	}
}

// ListarPorHierarquia lista as lojas do recorte em ordem de nome.
func (r *LojaRepo) ListarPorHierarquia(ctx context.Context, filtro repository.FiltroHierarquia) ([]entity.Loja, error) {
	coluna, err := colunaRecorte(filtro)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + colunasLoja + ` FROM lojas l`
	var args []any
	if coluna != "" {
		query += ` WHERE ` + coluna + ` = $1`
		args = append(args, filtro.Chave)
	}
	query += ` ORDER BY l.nome_loja`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar lojas: %w", err)
	}
	defer rows.Close()

	var lojas []entity.Loja
	for rows.Next() {
		loja, err := scanLoja(rows)
		if err != nil {
			return nil, err
		}
		lojas = append(lojas, loja)
	}
	return lojas, rows.Err()
}

// ObterPorChave busca uma loja pela chave. Retorna nil, nil quando não existe.
func (r *LojaRepo) ObterPorChave(ctx context.Context, chaveLoja string) (*entity.Loja, error) {
	query := `SELECT ` + colunasLoja + ` FROM lojas l WHERE l.chave_loja = $1`
	row := r.db.QueryRow(ctx, query, chaveLoja)
	loja, err := scanLoja(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter loja: %w", err)
	}
	return &loja, nil
}

// ListarProducao devolve a janela M3..M0 do produto para as lojas do recorte.
func (r *LojaRepo) ListarProducao(ctx context.Context, produto string, filtro repository.FiltroHierarquia) ([]entity.ProducaoMensal, error) {
	coluna, err := colunaRecorte(filtro)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT p.chave_loja, p.produto, p.mes_m3, p.mes_m2, p.mes_m1, p.mes_m0, p.data_ult_abertura
		FROM producao_mensal p
		JOIN lojas l ON l.chave_loja = p.chave_loja
		WHERE p.produto = $1`
	args := []any{produto}
	if coluna != "" {
		query += ` AND ` + coluna + ` = $2`
		args = append(args, filtro.Chave)
	}
	query += ` ORDER BY l.nome_loja`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar producao: %w", err)
	}
	defer rows.Close()

	var producoes []entity.ProducaoMensal
	for rows.Next() {
		var p entity.ProducaoMensal
		if err := rows.Scan(&p.ChaveLoja, &p.Produto, &p.MesM3, &p.MesM2, &p.MesM1, &p.MesM0, &p.DataUltAbertura); err != nil {
			return nil, fmt.Errorf("scan producao: %w", err)
		}
		producoes = append(producoes, p)
	}
	return producoes, rows.Err()
}

func scanLoja(row pgx.Row) (entity.Loja, error) {
	var l entity.Loja
	err := row.Scan(
		&l.ChaveLoja, &l.CNPJ, &l.NomeLoja, &l.NomePDV, &l.Situacao,
		&l.Endereco, &l.Telefone, &l.NomeContato,
		&l.Produtos.Consignado, &l.Produtos.Microsseguro, &l.Produtos.Lime, &l.Produtos.Conta,
		&l.SaldoCx, &l.Limite,
		&l.DataInauguracao, &l.DataCertificacao, &l.DataUltTransacao, &l.DataBloqueio,
		&l.MotivoBloqueio, &l.SituacaoTablet,
		&l.ChaveSupervisao, &l.DescSupervisao,
		&l.ChaveCoordenacao, &l.DescCoordenacao,
		&l.ChaveGerenciaArea, &l.DescGerenciaArea,
		&l.GerenciaRegional, &l.DiretoriaRegional,
		&l.AgRelacionamento, &l.CodAgRelacionamento,
		&l.Multiplicador,
	)
	if err != nil {
		return entity.Loja{}, err
	}
	return l, nil
}
