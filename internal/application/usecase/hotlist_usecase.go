package usecase

import (
	"context"
	"strings"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

// situações aceitas para um lead da hotlist.
var situacoesHotlist = map[string]bool{
	entity.LeadPendente:    true,
	entity.LeadTratado:     true,
	entity.LeadProspectado: true,
}

// situações aceitas numa tratativa; a do lead é derivada delas.
var situacoesTratativa = map[string]bool{
	entity.TratativaHotlistRealizada: true,
	entity.TratativaHotlistPendente:  true,
}

// HotlistUseCase leads de prospecção com recorte hierárquico.
type HotlistUseCase struct {
	hotlistRepo repository.HotlistRepository
	usuarios    *UsuarioUseCase
	uow         repository.UnidadeTrabalho
}

func NewHotlistUseCase(hotlistRepo repository.HotlistRepository, usuarios *UsuarioUseCase, uow repository.UnidadeTrabalho) *HotlistUseCase {
	return &HotlistUseCase{hotlistRepo: hotlistRepo, usuarios: usuarios, uow: uow}
}

// Listar retorna os leads visíveis para o usuário: admin enxerga tudo,
// coordenador e gerente enxergam seus supervisores, supervisor só os seus.
func (uc *HotlistUseCase) Listar(ctx context.Context, usuarioID string) ([]dto.ItemHotlistResponse, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	var itens []entity.ItemHotlist
	if escopo.Total {
		itens, err = uc.hotlistRepo.ListarTodos(ctx)
	} else {
		if escopo.Vazio() {
			return []dto.ItemHotlistResponse{}, nil
		}
		itens, err = uc.hotlistRepo.ListarPorSupervisores(ctx, escopo.IDs())
	}
	if err != nil {
		return nil, err
	}
	return paraItemHotlistResponses(itens), nil
}

// AtualizarSituacao muda a situação de um lead após validar o valor.
// Só o dono, o superior direto ou admin podem escrever.
func (uc *HotlistUseCase) AtualizarSituacao(ctx context.Context, usuarioID, hotlistID string, in dto.AtualizarSituacaoRequest) error {
	situacao := strings.TrimSpace(in.Situacao)
	if !situacoesHotlist[situacao] {
		return domain.ErrEntradaInvalida
	}
	if _, err := uc.itemParaAlteracao(ctx, usuarioID, hotlistID); err != nil {
		return err
	}
	return uc.hotlistRepo.AtualizarSituacao(ctx, hotlistID, situacao)
}

// RegistrarTratativa grava a tratativa e atualiza a situação do lead na
// mesma transação: ou os dois efeitos acontecem, ou nenhum. Tratativa
// realizada marca o lead como tratado; pendente o devolve a pendente.
func (uc *HotlistUseCase) RegistrarTratativa(ctx context.Context, usuarioID string, in dto.TratativaHotlistRequest) (*dto.TratativaHotlistResponse, error) {
	if strings.TrimSpace(in.HotlistID) == "" || strings.TrimSpace(in.Descricao) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	situacao := strings.TrimSpace(in.Situacao)
	if situacao == "" {
		situacao = entity.TratativaHotlistRealizada
	}
	if !situacoesTratativa[situacao] {
		return nil, domain.ErrEntradaInvalida
	}
	if _, err := uc.itemParaAlteracao(ctx, usuarioID, in.HotlistID); err != nil {
		return nil, err
	}

	situacaoLead := entity.LeadPendente
	if situacao == entity.TratativaHotlistRealizada {
		situacaoLead = entity.LeadTratado
	}

	tratativa := &entity.TratativaHotlist{
		HotlistID: in.HotlistID,
		UsuarioID: usuarioID,
		Descricao: strings.TrimSpace(in.Descricao),
		Situacao:  situacao,
	}
	err := uc.uow.ComHotlist(ctx, func(ctx context.Context, hotlist repository.HotlistRepository) error {
		if err := hotlist.CriarTratativa(ctx, tratativa); err != nil {
			return err
		}
		return hotlist.AtualizarSituacao(ctx, in.HotlistID, situacaoLead)
	})
	if err != nil {
		return nil, err
	}

	resp := paraTratativaHotlistResponse(*tratativa)
	return &resp, nil
}

// ListarTratativas devolve o histórico de tratativas de um lead no escopo.
func (uc *HotlistUseCase) ListarTratativas(ctx context.Context, usuarioID, hotlistID string) ([]dto.TratativaHotlistResponse, error) {
	if _, err := uc.itemNoEscopo(ctx, usuarioID, hotlistID); err != nil {
		return nil, err
	}
	tratativas, err := uc.hotlistRepo.ListarTratativas(ctx, hotlistID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TratativaHotlistResponse, 0, len(tratativas))
	for _, t := range tratativas {
		out = append(out, paraTratativaHotlistResponse(t))
	}
	return out, nil
}

// Resumo conta leads totais e pendentes dentro do escopo do usuário.
func (uc *HotlistUseCase) Resumo(ctx context.Context, usuarioID string) (*dto.ResumoHotlistResponse, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if !escopo.Total && escopo.Vazio() {
		return &dto.ResumoHotlistResponse{}, nil
	}
	resumo, err := uc.hotlistRepo.Resumo(ctx, escopo.IDs(), escopo.Total)
	if err != nil {
		return nil, err
	}
	return &dto.ResumoHotlistResponse{
		TotalLeads:     resumo.TotalLeads,
		LeadsPendentes: resumo.LeadsPendentes,
	}, nil
}

// itemParaAlteracao carrega o lead e confere a permissão de escrita, mais
// estreita que a de leitura: só o dono, o superior direto ou admin podem
// mudar o lead. Um gerente dois níveis acima lê, mas não altera.
func (uc *HotlistUseCase) itemParaAlteracao(ctx context.Context, usuarioID, hotlistID string) (*entity.ItemHotlist, error) {
	arvore, err := uc.usuarios.Arvore(ctx)
	if err != nil {
		return nil, err
	}
	item, err := uc.hotlistRepo.ObterPorID(ctx, hotlistID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}

	solicitante, ok := arvore.Usuario(usuarioID)
	if !ok {
		return nil, domain.ErrAcessoNegado
	}
	if solicitante.Papel == hierarquia.PapelAdmin || item.SupervisorID == usuarioID {
		return item, nil
	}
	if superior, ok := arvore.Superior(item.SupervisorID); ok && superior.ID == usuarioID {
		return item, nil
	}
	return nil, domain.ErrAcessoNegado
}

// itemNoEscopo carrega o lead e garante que o supervisor dono está no
// alcance do usuário. Fora do alcance a resposta é acesso negado, nunca
// um vazamento de existência.
func (uc *HotlistUseCase) itemNoEscopo(ctx context.Context, usuarioID, hotlistID string) (*entity.ItemHotlist, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	item, err := uc.hotlistRepo.ObterPorID(ctx, hotlistID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if !escopo.Permite(item.SupervisorID) {
		return nil, domain.ErrAcessoNegado
	}
	return item, nil
}

func paraItemHotlistResponses(itens []entity.ItemHotlist) []dto.ItemHotlistResponse {
	out := make([]dto.ItemHotlistResponse, 0, len(itens))
	for _, item := range itens {
		out = append(out, dto.ItemHotlistResponse{
			ID:                item.ID,
			SupervisorID:      item.SupervisorID,
			SupervisorNome:    item.SupervisorNome,
			CNPJ:              item.CNPJ,
			NomeLoja:          item.NomeLoja,
			Localizacao:       item.Localizacao,
			Agencia:           item.Agencia,
			Mercado:           item.Mercado,
			PracaPresenca:     item.PracaPresenca,
			Situacao:          item.Situacao,
			DiretoriaRegional: item.DiretoriaRegional,
			GerenciaRegional:  item.GerenciaRegional,
			PA:                item.PA,
			GerentePJ:         item.GerentePJ,
		})
	}
	return out
}

func paraTratativaHotlistResponse(t entity.TratativaHotlist) dto.TratativaHotlistResponse {
	return dto.TratativaHotlistResponse{
		ID:            t.ID,
		HotlistID:     t.HotlistID,
		UsuarioID:     t.UsuarioID,
		UsuarioNome:   t.UsuarioNome,
		Descricao:     t.Descricao,
		Situacao:      t.Situacao,
		DataTratativa: t.DataTratativa,
	}
}
