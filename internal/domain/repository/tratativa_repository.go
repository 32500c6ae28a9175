package repository

import (
	"context"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// TratativaPontoAtivoRepository porta de persistência das tratativas de
// pontos ativos. Registros são imutáveis: só inserção e leitura.
type TratativaPontoAtivoRepository interface {
	Criar(ctx context.Context, t *entity.TratativaPontoAtivo) error
	ListarPorLoja(ctx context.Context, chaveLoja string) ([]entity.TratativaPontoAtivo, error)
	ListarPorUsuarios(ctx context.Context, usuarioIDs []string, semRecorte bool) ([]entity.TratativaPontoAtivo, error)
}
