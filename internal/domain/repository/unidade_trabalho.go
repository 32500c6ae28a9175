package repository

import "context"

// UnidadeTrabalho executa um bloco dentro de uma transação do banco. O
// repositório entregue ao callback enxerga apenas a transação: commit no
// retorno nil, rollback em qualquer erro.
type UnidadeTrabalho interface {
	ComHotlist(ctx context.Context, fn func(ctx context.Context, hotlist HotlistRepository) error) error
}
