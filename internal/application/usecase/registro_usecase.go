package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/corbanhub/gestao-api/internal/application/auth"
	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

// FiltroListagemRegistros filtros de consulta da auditoria via query string.
type FiltroListagemRegistros struct {
	UsuarioID string
	TipoAcao  string
	Status    string
	Inicio    *time.Time
	Fim       *time.Time
	Page      dto.PageRequest
}

// RegistroUseCase auditoria de ações: gravação e consulta recortada.
type RegistroUseCase struct {
	registroRepo repository.RegistroAcessoRepository
	usuarios     *UsuarioUseCase
}

func NewRegistroUseCase(registroRepo repository.RegistroAcessoRepository, usuarios *UsuarioUseCase) *RegistroUseCase {
	return &RegistroUseCase{registroRepo: registroRepo, usuarios: usuarios}
}

// Registrar grava um log disparado pelo próprio cliente (navegação, ações
// de tela). O detalhe livre precisa ser JSON válido.
func (uc *RegistroUseCase) Registrar(ctx context.Context, usuarioID string, in dto.RegistroAcessoRequest, origem auth.Origem) error {
	tipo := strings.TrimSpace(in.TipoAcao)
	if tipo == "" {
		return domain.ErrEntradaInvalida
	}
	detalhes := strings.TrimSpace(in.Detalhes)
	if detalhes == "" {
		detalhes = "{}"
	}
	if !json.Valid([]byte(detalhes)) {
		return domain.ErrEntradaInvalida
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.StatusInfo
	}

	return uc.registroRepo.Criar(ctx, &entity.RegistroAcesso{
		UsuarioID: usuarioID,
		TipoAcao:  tipo,
		IP:        origem.IP,
		UserAgent: origem.UserAgent,
		Detalhes:  detalhes,
		Status:    status,
	})
}

// Listar consulta a auditoria. Supervisor não tem acesso; coordenador e
// gerente enxergam a própria subárvore; admin enxerga tudo.
func (uc *RegistroUseCase) Listar(ctx context.Context, usuarioID string, filtro FiltroListagemRegistros) (*dto.RegistrosAcessoPage, error) {
	usuario, err := uc.usuarios.ObterPorID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario.Papel == hierarquia.PapelSupervisor {
		return nil, domain.ErrAcessoNegado
	}

	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if !escopo.Total && escopo.Vazio() {
		return nil, domain.ErrAcessoNegado
	}

	filtro.Page.DefaultPage()
	registros, total, err := uc.registroRepo.Listar(ctx, repository.FiltroRegistros{
		UsuarioIDs: escopo.IDs(),
		SemRecorte: escopo.Total,
		UsuarioID:  filtro.UsuarioID,
		TipoAcao:   filtro.TipoAcao,
		Status:     filtro.Status,
		Inicio:     filtro.Inicio,
		Fim:        filtro.Fim,
		Limit:      filtro.Page.Limit,
		Offset:     filtro.Page.Offset,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.RegistroAcessoResponse, 0, len(registros))
	for _, r := range registros {
		out = append(out, dto.RegistroAcessoResponse{
			ID:               r.ID,
			UsuarioID:        r.UsuarioID,
			UsuarioNome:      r.UsuarioNome,
			UsuarioFuncional: r.UsuarioFuncional,
			UsuarioPapel:     r.UsuarioPapel,
			TipoAcao:         r.TipoAcao,
			IP:               r.IP,
			UserAgent:        r.UserAgent,
			Detalhes:         r.Detalhes,
			Status:           r.Status,
			CoordenadorNome:  r.CoordenadorNome,
			GerenteNome:      r.GerenteNome,
			CriadoEm:         r.CriadoEm,
		})
	}
	return &dto.RegistrosAcessoPage{
		Registros: out,
		Page: dto.PageResponse{
			Limit:  filtro.Page.Limit,
			Offset: filtro.Page.Offset,
			Total:  total,
		},
	}, nil
}
