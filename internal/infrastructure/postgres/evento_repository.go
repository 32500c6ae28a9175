package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo adaptador PostgreSQL para a agenda de eventos.
type EventoRepo struct {
	db DBTX
}

func NewEventoRepository(db DBTX) *EventoRepo {
	return &EventoRepo{db: db}
}

const colunasEvento = `
	e.id, e.titulo, COALESCE(e.descricao, ''), e.data_inicio, e.data_fim,
	COALESCE(e.tipo_evento, ''), COALESCE(e.location, ''), COALESCE(e.subcategoria, ''),
	COALESCE(e.outra_descricao, ''), e.informar_agencia, COALESCE(e.numero_agencia, ''),
	e.is_pa, COALESCE(e.municipio, ''), COALESCE(e.uf, ''), COALESCE(e.feedback, ''),
	e.supervisor_id, COALESCE(u.nome, ''), e.criado_em, e.atualizado_em`

const deEvento = ` FROM eventos e LEFT JOIN usuarios u ON u.id = e.supervisor_id`

// Listar eventos do recorte, com janela de datas opcional.
func (r *EventoRepo) Listar(ctx context.Context, filtro repository.FiltroEventos) ([]entity.Evento, error) {
	query := `SELECT ` + colunasEvento + deEvento + ` WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filtro.SemRecorte {
		query += ` AND e.supervisor_id = ANY(` + arg(filtro.SupervisorIDs) + `)`
	}
	if filtro.Inicio != nil {
		query += ` AND e.data_fim >= ` + arg(*filtro.Inicio)
	}
	if filtro.Fim != nil {
		query += ` AND e.data_inicio <= ` + arg(*filtro.Fim)
	}
	query += ` ORDER BY e.data_inicio`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar eventos: %w", err)
	}
	defer rows.Close()

	var eventos []entity.Evento
	for rows.Next() {
		ev, err := scanEvento(rows)
		if err != nil {
			return nil, err
		}
		eventos = append(eventos, ev)
	}
	return eventos, rows.Err()
}

// ObterPorID busca um evento. Retorna nil, nil quando não existe.
func (r *EventoRepo) ObterPorID(ctx context.Context, id string) (*entity.Evento, error) {
	query := `SELECT ` + colunasEvento + deEvento + ` WHERE e.id = $1`
	ev, err := scanEvento(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter evento: %w", err)
	}
	return &ev, nil
}

// Criar grava o evento e devolve os timestamps gerados.
func (r *EventoRepo) Criar(ctx context.Context, ev *entity.Evento) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	query := `
		INSERT INTO eventos
			(id, titulo, descricao, data_inicio, data_fim, tipo_evento, location,
			 subcategoria, outra_descricao, informar_agencia, numero_agencia,
			 is_pa, municipio, uf, supervisor_id, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING criado_em, atualizado_em`
	err := r.db.QueryRow(ctx, query,
		ev.ID, ev.Titulo, ev.Descricao, ev.DataInicio, ev.DataFim, ev.TipoEvento, ev.Location,
		ev.Subcategoria, ev.OutraDescricao, ev.InformarAgencia, ev.NumeroAgencia,
		ev.IsPA, ev.Municipio, ev.UF, ev.SupervisorID,
	).Scan(&ev.CriadoEm, &ev.AtualizadoEm)
	if err != nil {
		return fmt.Errorf("criar evento: %w", err)
	}
	return nil
}

// Atualizar regrava os campos editáveis do evento.
func (r *EventoRepo) Atualizar(ctx context.Context, ev *entity.Evento) error {
	query := `
		UPDATE eventos SET
			titulo = $2, descricao = $3, data_inicio = $4, data_fim = $5,
			tipo_evento = $6, location = $7, subcategoria = $8, outra_descricao = $9,
			informar_agencia = $10, numero_agencia = $11, is_pa = $12,
			municipio = $13, uf = $14, atualizado_em = NOW()
		WHERE id = $1
		RETURNING atualizado_em`
	err := r.db.QueryRow(ctx, query,
		ev.ID, ev.Titulo, ev.Descricao, ev.DataInicio, ev.DataFim,
		ev.TipoEvento, ev.Location, ev.Subcategoria, ev.OutraDescricao,
		ev.InformarAgencia, ev.NumeroAgencia, ev.IsPA,
		ev.Municipio, ev.UF,
	).Scan(&ev.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("atualizar evento: %w", err)
	}
	return nil
}

// AtualizarFeedback anota o retorno do evento.
func (r *EventoRepo) AtualizarFeedback(ctx context.Context, id, feedback string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE eventos SET feedback = $2, atualizado_em = NOW() WHERE id = $1`,
		id, feedback)
	if err != nil {
		return fmt.Errorf("atualizar feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Excluir remove o evento.
func (r *EventoRepo) Excluir(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("excluir evento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func scanEvento(row pgx.Row) (entity.Evento, error) {
	var ev entity.Evento
	err := row.Scan(
		&ev.ID, &ev.Titulo, &ev.Descricao, &ev.DataInicio, &ev.DataFim,
		&ev.TipoEvento, &ev.Location, &ev.Subcategoria,
		&ev.OutraDescricao, &ev.InformarAgencia, &ev.NumeroAgencia,
		&ev.IsPA, &ev.Municipio, &ev.UF, &ev.Feedback,
		&ev.SupervisorID, &ev.SupervisorNome, &ev.CriadoEm, &ev.AtualizadoEm,
	)
	return ev, err
}
