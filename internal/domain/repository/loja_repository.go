package repository

import (
	"context"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// FiltroHierarquia recorte de lojas pela chave da cadeia de supervisão.
// Papel admin ignora a chave (sem filtro); os demais filtram pela coluna
// correspondente ao papel.
type FiltroHierarquia struct {
	Papel string
	Chave int64
}

// LojaRepository porta de leitura das lojas e da produção mensal.
type LojaRepository interface {
	ListarPorHierarquia(ctx context.Context, filtro FiltroHierarquia) ([]entity.Loja, error)
	ObterPorChave(ctx context.Context, chaveLoja string) (*entity.Loja, error)

	// ListarProducao devolve a janela M3..M0 do produto para as lojas do
	// filtro, na ordem do nome da loja.
	ListarProducao(ctx context.Context, produto string, filtro FiltroHierarquia) ([]entity.ProducaoMensal, error)
}
