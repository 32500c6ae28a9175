package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.HotlistRepository = (*HotlistRepo)(nil)

// HotlistRepo adaptador PostgreSQL para os leads de prospecção.
type HotlistRepo struct {
	db DBTX
}

func NewHotlistRepository(db DBTX) *HotlistRepo {
	return &HotlistRepo{db: db}
}

const colunasHotlist = `
	h.id, h.supervisor_id, COALESCE(u.nome, ''), h.cnpj, h.nome_loja,
	COALESCE(h.localizacao, ''), COALESCE(h.agencia, ''), COALESCE(h.mercado, ''),
	COALESCE(h.praca_presenca, ''), h.situacao,
	COALESCE(h.diretoria_regional, ''), COALESCE(h.gerencia_regional, ''),
	COALESCE(h.pa, ''), COALESCE(h.gerente_pj, '')`

const deHotlist = ` FROM hotlist h LEFT JOIN usuarios u ON u.id = h.supervisor_id`

// ListarTodos devolve todos os leads (visão admin).
func (r *HotlistRepo) ListarTodos(ctx context.Context) ([]entity.ItemHotlist, error) {
	query := `SELECT ` + colunasHotlist + deHotlist + ` ORDER BY h.nome_loja`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar hotlist: %w", err)
	}
	defer rows.Close()
	return scanItensHotlist(rows)
}

// ListarPorSupervisores recorta pelos supervisores do escopo.
func (r *HotlistRepo) ListarPorSupervisores(ctx context.Context, supervisorIDs []string) ([]entity.ItemHotlist, error) {
	query := `SELECT ` + colunasHotlist + deHotlist + `
		WHERE h.supervisor_id = ANY($1) ORDER BY h.nome_loja`
	rows, err := r.db.Query(ctx, query, supervisorIDs)
	if err != nil {
		return nil, fmt.Errorf("listar hotlist por supervisores: %w", err)
	}
	defer rows.Close()
	return scanItensHotlist(rows)
}

// ObterPorID busca um lead. Retorna nil, nil quando não existe.
func (r *HotlistRepo) ObterPorID(ctx context.Context, id string) (*entity.ItemHotlist, error) {
	query := `SELECT ` + colunasHotlist + deHotlist + ` WHERE h.id = $1`
	var item entity.ItemHotlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.SupervisorID, &item.SupervisorNome, &item.CNPJ, &item.NomeLoja,
		&item.Localizacao, &item.Agencia, &item.Mercado,
		&item.PracaPresenca, &item.Situacao,
		&item.DiretoriaRegional, &item.GerenciaRegional,
		&item.PA, &item.GerentePJ,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter lead: %w", err)
	}
	return &item, nil
}

// AtualizarSituacao muda a situação do lead.
func (r *HotlistRepo) AtualizarSituacao(ctx context.Context, id, situacao string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE hotlist SET situacao = $2, atualizado_em = NOW() WHERE id = $1`,
		id, situacao)
	if err != nil {
		return fmt.Errorf("atualizar situacao do lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s não existe", id)
	}
	return nil
}

// CriarTratativa grava uma tratativa do lead e devolve os campos gerados.
func (r *HotlistRepo) CriarTratativa(ctx context.Context, t *entity.TratativaHotlist) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `
		INSERT INTO hotlist_tratativas (id, hotlist_id, usuario_id, descricao, situacao, data_tratativa)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING data_tratativa`
	err := r.db.QueryRow(ctx, query, t.ID, t.HotlistID, t.UsuarioID, t.Descricao, t.Situacao).
		Scan(&t.DataTratativa)
	if err != nil {
		return fmt.Errorf("criar tratativa de hotlist: %w", err)
	}
	return nil
}

// ListarTratativas histórico do lead, mais recente primeiro.
func (r *HotlistRepo) ListarTratativas(ctx context.Context, hotlistID string) ([]entity.TratativaHotlist, error) {
	query := `
		SELECT t.id, t.hotlist_id, t.usuario_id, COALESCE(u.nome, ''), t.descricao, t.situacao, t.data_tratativa
		FROM hotlist_tratativas t
		LEFT JOIN usuarios u ON u.id = t.usuario_id
		WHERE t.hotlist_id = $1
		ORDER BY t.data_tratativa DESC`
	rows, err := r.db.Query(ctx, query, hotlistID)
	if err != nil {
		return nil, fmt.Errorf("listar tratativas do lead: %w", err)
	}
	defer rows.Close()

	var tratativas []entity.TratativaHotlist
	for rows.Next() {
		var t entity.TratativaHotlist
		if err := rows.Scan(&t.ID, &t.HotlistID, &t.UsuarioID, &t.UsuarioNome, &t.Descricao, &t.Situacao, &t.DataTratativa); err != nil {
			return nil, fmt.Errorf("scan tratativa: %w", err)
		}
		tratativas = append(tratativas, t)
	}
	return tratativas, rows.Err()
}

// Resumo contadores de leads totais e pendentes dentro do recorte.
func (r *HotlistRepo) Resumo(ctx context.Context, supervisorIDs []string, semRecorte bool) (repository.ResumoHotlist, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE situacao = $1)
		FROM hotlist`
	args := []any{entity.LeadPendente}
	if !semRecorte {
		query += ` WHERE supervisor_id = ANY($2)`
		args = append(args, supervisorIDs)
	}

	var resumo repository.ResumoHotlist
	if err := r.db.QueryRow(ctx, query, args...).Scan(&resumo.TotalLeads, &resumo.LeadsPendentes); err != nil {
		return repository.ResumoHotlist{}, fmt.Errorf("resumo da hotlist: %w", err)
	}
	return resumo, nil
}

func scanItensHotlist(rows pgx.Rows) ([]entity.ItemHotlist, error) {
	var itens []entity.ItemHotlist
	for rows.Next() {
		var item entity.ItemHotlist
		if err := rows.Scan(
			&item.ID, &item.SupervisorID, &item.SupervisorNome, &item.CNPJ, &item.NomeLoja,
			&item.Localizacao, &item.Agencia, &item.Mercado,
			&item.PracaPresenca, &item.Situacao,
			&item.DiretoriaRegional, &item.GerenciaRegional,
			&item.PA, &item.GerentePJ,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}
