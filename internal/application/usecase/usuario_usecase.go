package usecase

import (
	"context"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

// UsuarioUseCase consultas de usuários e da hierarquia comercial.
type UsuarioUseCase struct {
	usuarioRepo    repository.UsuarioRepository
	hierarquiaRepo repository.HierarquiaRepository
}

func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository, hierarquiaRepo repository.HierarquiaRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo, hierarquiaRepo: hierarquiaRepo}
}

// Arvore monta a árvore de hierarquia a partir do banco. A montagem é por
// requisição: a base de usuários é pequena e o vínculo muda com frequência.
func (uc *UsuarioUseCase) Arvore(ctx context.Context) (*hierarquia.Arvore, error) {
	usuarios, err := uc.usuarioRepo.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	vinculos, err := uc.hierarquiaRepo.ListarVinculos(ctx)
	if err != nil {
		return nil, err
	}
	return hierarquia.Nova(usuarios, vinculos)
}

// ListarTodos lista todos os usuários. Restrito a admin na camada HTTP.
func (uc *UsuarioUseCase) ListarTodos(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	return paraUsuarioResponses(usuarios), nil
}

// ObterPorID busca um usuário pelo identificador.
func (uc *UsuarioUseCase) ObterPorID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	resp := paraUsuarioResponse(*usuario)
	return &resp, nil
}

// Subordinados retorna os subordinados diretos de um usuário.
func (uc *UsuarioUseCase) Subordinados(ctx context.Context, usuarioID string) ([]dto.UsuarioResponse, error) {
	arvore, err := uc.Arvore(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := arvore.Usuario(usuarioID); !ok {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return paraUsuarioResponses(arvore.Subordinados(usuarioID)), nil
}

// Superior retorna o superior imediato, ou nil quando o usuário é raiz.
func (uc *UsuarioUseCase) Superior(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error) {
	arvore, err := uc.Arvore(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := arvore.Usuario(usuarioID); !ok {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	superior, ok := arvore.Superior(usuarioID)
	if !ok {
		return nil, nil
	}
	resp := paraUsuarioResponse(superior)
	return &resp, nil
}

// Supervisores lista os supervisores alcançáveis por coordenador ou gerente.
func (uc *UsuarioUseCase) Supervisores(ctx context.Context, usuarioID string) ([]dto.UsuarioResponse, error) {
	arvore, err := uc.Arvore(ctx)
	if err != nil {
		return nil, err
	}
	supervisores, err := arvore.Supervisores(usuarioID)
	if err != nil {
		return nil, err
	}
	return paraUsuarioResponses(supervisores), nil
}

// EscopoDe resolve o escopo de visibilidade do usuário autenticado.
func (uc *UsuarioUseCase) EscopoDe(ctx context.Context, usuarioID string) (hierarquia.Escopo, error) {
	arvore, err := uc.Arvore(ctx)
	if err != nil {
		return hierarquia.Escopo{}, err
	}
	return arvore.EscopoVisibilidade(usuarioID)
}

func paraUsuarioResponse(u entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Funcional: u.Funcional,
		Papel:     u.Papel,
		Email:     u.Email,
		Chave:     u.Chave,
	}
}

func paraUsuarioResponses(usuarios []entity.Usuario) []dto.UsuarioResponse {
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, paraUsuarioResponse(u))
	}
	return out
}
