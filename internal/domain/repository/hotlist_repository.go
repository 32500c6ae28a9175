package repository

import (
	"context"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// ResumoHotlist contadores do painel de leads.
type ResumoHotlist struct {
	TotalLeads     int
	LeadsPendentes int
}

// HotlistRepository porta de persistência dos leads de prospecção.
type HotlistRepository interface {
	// ListarTodos é a visão sem recorte (admin).
	ListarTodos(ctx context.Context) ([]entity.ItemHotlist, error)
	// ListarPorSupervisores recorta pelos donos do escopo de visibilidade.
	ListarPorSupervisores(ctx context.Context, supervisorIDs []string) ([]entity.ItemHotlist, error)
	ObterPorID(ctx context.Context, id string) (*entity.ItemHotlist, error)
	AtualizarSituacao(ctx context.Context, id, situacao string) error

	CriarTratativa(ctx context.Context, t *entity.TratativaHotlist) error
	ListarTratativas(ctx context.Context, hotlistID string) ([]entity.TratativaHotlist, error)

	Resumo(ctx context.Context, supervisorIDs []string, semRecorte bool) (ResumoHotlist, error)
}
