package repository

import (
	"context"
	"time"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// FiltroRegistros recorte e paginação da auditoria.
type FiltroRegistros struct {
	UsuarioIDs []string // visíveis ao solicitante; ignorado quando SemRecorte
	SemRecorte bool

	UsuarioID string
	TipoAcao  string
	Status    string
	Inicio    *time.Time
	Fim       *time.Time

	Limit  int
	Offset int
}

// RegistroAcessoRepository porta de persistência da auditoria de acesso.
type RegistroAcessoRepository interface {
	Criar(ctx context.Context, r *entity.RegistroAcesso) error
	Listar(ctx context.Context, filtro FiltroRegistros) ([]entity.RegistroAcesso, int, error)
}
