package repository

import (
	"context"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// UsuarioRepository porta de persistência de usuários. Ausência devolve
// (nil, nil); erro é reservado a falha de infraestrutura.
type UsuarioRepository interface {
	ObterPorID(ctx context.Context, id string) (*entity.Usuario, error)
	ObterPorFuncional(ctx context.Context, funcional string) (*entity.Usuario, error)
	ListarTodos(ctx context.Context) ([]entity.Usuario, error)
}

// HierarquiaRepository carrega os vínculos subordinado -> superior para a
// montagem da árvore em memória.
type HierarquiaRepository interface {
	ListarVinculos(ctx context.Context) ([]entity.VinculoHierarquia, error)
}
