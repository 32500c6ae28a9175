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

// Formato de data aceito nos formulários do painel.
const formatoData = "2006-01-02"

// TratativaUseCase registro e consulta de tratativas de pontos ativos.
type TratativaUseCase struct {
	tratativaRepo repository.TratativaPontoAtivoRepository
	usuarios      *UsuarioUseCase
}

func NewTratativaUseCase(tratativaRepo repository.TratativaPontoAtivoRepository, usuarios *UsuarioUseCase) *TratativaUseCase {
	return &TratativaUseCase{tratativaRepo: tratativaRepo, usuarios: usuarios}
}

// Registrar valida e grava uma tratativa. O registro é imutável: não há
// caminho de edição depois de gravado.
func (uc *TratativaUseCase) Registrar(ctx context.Context, usuarioID string, in dto.TratativaPontoAtivoRequest) (*dto.TratativaPontoAtivoResponse, error) {
	if strings.TrimSpace(in.ChaveLoja) == "" || strings.TrimSpace(in.DescricaoTratativa) == "" {
		return nil, fmt.Errorf("%w: chave_loja e descricao_tratativa são obrigatórios", domain.ErrEntradaInvalida)
	}
	if in.FoiTratado != "sim" && in.FoiTratado != "nao" {
		return nil, fmt.Errorf("%w: foi_tratado deve ser sim ou nao", domain.ErrEntradaInvalida)
	}
	if in.Situacao != entity.TratativaRealizada && in.Situacao != entity.TratativaPendente {
		return nil, fmt.Errorf("%w: situacao deve ser %s ou %s",
			domain.ErrEntradaInvalida, entity.TratativaRealizada, entity.TratativaPendente)
	}

	dataContato, err := time.Parse(formatoData, in.DataContato)
	if err != nil {
		return nil, fmt.Errorf("%w: data_contato inválida", domain.ErrEntradaInvalida)
	}

	var quandoVolta *time.Time
	if strings.TrimSpace(in.QuandoVoltaOperar) != "" {
		d, err := time.Parse(formatoData, in.QuandoVoltaOperar)
		if err != nil {
			return nil, fmt.Errorf("%w: quando_volta_operar inválida", domain.ErrEntradaInvalida)
		}
		quandoVolta = &d
	}

	tipo := strings.TrimSpace(in.Tipo)
	if tipo == "" {
		tipo = "pontos-ativos"
	}

	tratativa := &entity.TratativaPontoAtivo{
		ChaveLoja:          strings.TrimSpace(in.ChaveLoja),
		UsuarioID:          usuarioID,
		DataContato:        dataContato,
		FoiTratado:         in.FoiTratado,
		DescricaoTratativa: strings.TrimSpace(in.DescricaoTratativa),
		QuandoVoltaOperar:  quandoVolta,
		Situacao:           in.Situacao,
		Tipo:               tipo,
	}
	if err := uc.tratativaRepo.Criar(ctx, tratativa); err != nil {
		return nil, err
	}

	resp := paraTratativaPontoAtivoResponse(*tratativa)
	return &resp, nil
}

// ListarPorLoja histórico de tratativas de uma loja, mais recente primeiro.
func (uc *TratativaUseCase) ListarPorLoja(ctx context.Context, chaveLoja string) ([]dto.TratativaPontoAtivoResponse, error) {
	if strings.TrimSpace(chaveLoja) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	tratativas, err := uc.tratativaRepo.ListarPorLoja(ctx, chaveLoja)
	if err != nil {
		return nil, err
	}
	return paraTratativaPontoAtivoResponses(tratativas), nil
}

// Listar devolve as tratativas registradas dentro do escopo hierárquico do
// usuário: as próprias e as dos subordinados alcançáveis.
func (uc *TratativaUseCase) Listar(ctx context.Context, usuarioID string) ([]dto.TratativaPontoAtivoResponse, error) {
	escopo, err := uc.usuarios.EscopoDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if !escopo.Total && escopo.Vazio() {
		return []dto.TratativaPontoAtivoResponse{}, nil
	}
	tratativas, err := uc.tratativaRepo.ListarPorUsuarios(ctx, escopo.IDs(), escopo.Total)
	if err != nil {
		return nil, err
	}
	return paraTratativaPontoAtivoResponses(tratativas), nil
}

func paraTratativaPontoAtivoResponse(t entity.TratativaPontoAtivo) dto.TratativaPontoAtivoResponse {
	return dto.TratativaPontoAtivoResponse{
		ID:                 t.ID,
		ChaveLoja:          t.ChaveLoja,
		UsuarioID:          t.UsuarioID,
		NomeUsuario:        t.NomeUsuario,
		DataContato:        t.DataContato,
		FoiTratado:         t.FoiTratado,
		DescricaoTratativa: t.DescricaoTratativa,
		QuandoVoltaOperar:  t.QuandoVoltaOperar,
		Situacao:           t.Situacao,
		Tipo:               t.Tipo,
		DataRegistro:       t.DataRegistro,
	}
}

func paraTratativaPontoAtivoResponses(tratativas []entity.TratativaPontoAtivo) []dto.TratativaPontoAtivoResponse {
	out := make([]dto.TratativaPontoAtivoResponse, 0, len(tratativas))
	for _, t := range tratativas {
		out = append(out, paraTratativaPontoAtivoResponse(t))
	}
	return out
}
