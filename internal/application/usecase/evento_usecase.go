package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

// EventoUseCase agenda de eventos dos supervisores.
type EventoUseCase struct {
	eventoRepo repository.EventoRepository
	usuarios   *UsuarioUseCase
}

func NewEventoUseCase(eventoRepo repository.EventoRepository, usuarios *UsuarioUseCase) *EventoUseCase {
	return &EventoUseCase{eventoRepo: eventoRepo, usuarios: usuarios}
}

// Listar eventos dentro do escopo hierárquico, com janela de datas opcional.
func (uc *EventoUseCase) Listar(ctx context.Context, usuarioID string, inicio, fim *time.Time) ([]dto.EventoResponse, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if !escopo.Total && escopo.Vazio() {
		return []dto.EventoResponse{}, nil
	}
	eventos, err := uc.eventoRepo.Listar(ctx, repository.FiltroEventos{
		SupervisorIDs: escopo.IDs(),
		SemRecorte:    escopo.Total,
		Inicio:        inicio,
		Fim:           fim,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventoResponse, 0, len(eventos))
	for _, ev := range eventos {
		out = append(out, paraEventoResponse(ev))
	}
	return out, nil
}

// Obter devolve um único evento, sujeito ao mesmo recorte da listagem.
func (uc *EventoUseCase) Obter(ctx context.Context, usuarioID, eventoID string) (*dto.EventoResponse, error) {
	evento, err := uc.eventoNoEscopo(ctx, usuarioID, eventoID)
	if err != nil {
		return nil, err
	}
	resp := paraEventoResponse(*evento)
	return &resp, nil
}

// Criar grava um evento em nome do usuário autenticado.
func (uc *EventoUseCase) Criar(ctx context.Context, usuarioID string, in dto.EventoRequest) (*dto.EventoResponse, error) {
	evento, err := eventoDe(in)
	if err != nil {
		return nil, err
	}
	evento.SupervisorID = usuarioID

	if err := uc.eventoRepo.Criar(ctx, evento); err != nil {
		return nil, err
	}
	resp := paraEventoResponse(*evento)
	return &resp, nil
}

// Atualizar altera um evento. Só o dono, a cadeia acima ou admin podem.
func (uc *EventoUseCase) Atualizar(ctx context.Context, usuarioID, eventoID string, in dto.EventoRequest) (*dto.EventoResponse, error) {
	atual, err := uc.eventoNoEscopo(ctx, usuarioID, eventoID)
	if err != nil {
		return nil, err
	}

	novo, err := eventoDe(in)
	if err != nil {
		return nil, err
	}
	novo.ID = atual.ID
	novo.SupervisorID = atual.SupervisorID
	novo.Feedback = atual.Feedback

	if err := uc.eventoRepo.Atualizar(ctx, novo); err != nil {
		return nil, err
	}
	resp := paraEventoResponse(*novo)
	return &resp, nil
}

// RegistrarFeedback anota o retorno de um evento já realizado.
func (uc *EventoUseCase) RegistrarFeedback(ctx context.Context, usuarioID, eventoID string, in dto.FeedbackRequest) error {
	feedback := strings.TrimSpace(in.Feedback)
	if feedback == "" {
		return fmt.Errorf("%w: feedback vazio", domain.ErrEntradaInvalida)
	}
	if _, err := uc.eventoNoEscopo(ctx, usuarioID, eventoID); err != nil {
		return err
	}
	return uc.eventoRepo.AtualizarFeedback(ctx, eventoID, feedback)
}

// Excluir remove um evento do escopo do usuário.
func (uc *EventoUseCase) Excluir(ctx context.Context, usuarioID, eventoID string) error {
	if _, err := uc.eventoNoEscopo(ctx, usuarioID, eventoID); err != nil {
		return err
	}
	return uc.eventoRepo.Excluir(ctx, eventoID)
}

// eventoNoEscopo carrega o evento e confere o alcance hierárquico.
func (uc *EventoUseCase) eventoNoEscopo(ctx context.Context, usuarioID, eventoID string) (*entity.Evento, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	evento, err := uc.eventoRepo.ObterPorID(ctx, eventoID)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if !escopo.Permite(evento.SupervisorID) {
		return nil, domain.ErrAcessoNegado
	}
	return evento, nil
}

// eventoDe valida o corpo e converte para a entidade.
func eventoDe(in dto.EventoRequest) (*entity.Evento, error) {
	if strings.TrimSpace(in.Titulo) == "" {
		return nil, fmt.Errorf("%w: title é obrigatório", domain.ErrEntradaInvalida)
	}
	inicio, err := time.Parse(time.RFC3339, in.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date inválida", domain.ErrEntradaInvalida)
	}
	fim, err := time.Parse(time.RFC3339, in.DataFim)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date inválida", domain.ErrEntradaInvalida)
	}
	if fim.Before(inicio) {
		return nil, fmt.Errorf("%w: end_date anterior a start_date", domain.ErrEntradaInvalida)
	}
	return &entity.Evento{
		Titulo:          strings.TrimSpace(in.Titulo),
		Descricao:       strings.TrimSpace(in.Descricao),
		DataInicio:      inicio,
		DataFim:         fim,
		TipoEvento:      strings.TrimSpace(in.TipoEvento),
		Location:        strings.TrimSpace(in.Location),
		Subcategoria:    strings.TrimSpace(in.Subcategoria),
		OutraDescricao:  strings.TrimSpace(in.OutraDescricao),
		InformarAgencia: in.InformarAgencia,
		NumeroAgencia:   strings.TrimSpace(in.NumeroAgencia),
		IsPA:            in.IsPA,
		Municipio:       strings.TrimSpace(in.Municipio),
		UF:              strings.ToUpper(strings.TrimSpace(in.UF)),
	}, nil
}

func paraEventoResponse(ev entity.Evento) dto.EventoResponse {
	return dto.EventoResponse{
		ID:              ev.ID,
		Titulo:          ev.Titulo,
		Descricao:       ev.Descricao,
		DataInicio:      ev.DataInicio,
		DataFim:         ev.DataFim,
		TipoEvento:      ev.TipoEvento,
		Location:        ev.Location,
		Subcategoria:    ev.Subcategoria,
		OutraDescricao:  ev.OutraDescricao,
		InformarAgencia: ev.InformarAgencia,
		NumeroAgencia:   ev.NumeroAgencia,
		IsPA:            ev.IsPA,
		Municipio:       ev.Municipio,
		UF:              ev.UF,
		Feedback:        ev.Feedback,
		SupervisorID:    ev.SupervisorID,
		SupervisorNome:  ev.SupervisorNome,
		CriadoEm:        ev.CriadoEm,
		AtualizadoEm:    ev.AtualizadoEm,
	}
}
