package repository

import (
	"context"
	"time"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// FiltroEventos recorte da agenda.
type FiltroEventos struct {
	SupervisorIDs []string // donos visíveis; ignorado quando SemRecorte
	SemRecorte    bool
	Inicio        *time.Time
	Fim           *time.Time
}

// EventoRepository porta de persistência de eventos de agenda.
type EventoRepository interface {
	Listar(ctx context.Context, filtro FiltroEventos) ([]entity.Evento, error)
	ObterPorID(ctx context.Context, id string) (*entity.Evento, error)
	Criar(ctx context.Context, ev *entity.Evento) error
	Atualizar(ctx context.Context, ev *entity.Evento) error
	AtualizarFeedback(ctx context.Context, id, feedback string) error
	Excluir(ctx context.Context, id string) error
}
