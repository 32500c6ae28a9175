package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

func novoTratativaUC(t *testing.T) (*usecase.TratativaUseCase, *fakeTratativaRepo) {
	t.Helper()
	repo := &fakeTratativaRepo{}
	return usecase.NewTratativaUseCase(repo, novoUsuarioUC(usuariosExemplo())), repo
}

func tratativaValida() dto.TratativaPontoAtivoRequest {
	return dto.TratativaPontoAtivoRequest{
		ChaveLoja:          "L1",
		DataContato:        "2026-08-20",
		FoiTratado:         "sim",
		DescricaoTratativa: "loja retomou as aberturas após contato",
		QuandoVoltaOperar:  "2026-09-01",
		Situacao:           entity.TratativaRealizada,
		Tipo:               "pontos-ativos",
	}
}

func TestTratativaRegistrar_CaminhoFeliz(t *testing.T) {
	uc, repo := novoTratativaUC(t)

	out, err := uc.Registrar(context.Background(), "joao", tratativaValida())
	require.NoError(t, err)

	assert.Equal(t, "joao", out.UsuarioID)
	assert.Equal(t, "sim", out.FoiTratado)
	require.NotNil(t, out.QuandoVoltaOperar)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *out.QuandoVoltaOperar)
	require.Len(t, repo.tratativas, 1)
}

// foi_tratado só aceita "sim" ou "nao".
func TestTratativaRegistrar_FoiTratadoInvalido(t *testing.T) {
	uc, _ := novoTratativaUC(t)

	in := tratativaValida()
	in.FoiTratado = "talvez"
	_, err := uc.Registrar(context.Background(), "joao", in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// situacao só aceita "tratada" ou "pendente".
func TestTratativaRegistrar_SituacaoInvalida(t *testing.T) {
	uc, _ := novoTratativaUC(t)

	in := tratativaValida()
	in.Situacao = "resolvida"
	_, err := uc.Registrar(context.Background(), "joao", in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestTratativaRegistrar_DataInvalida(t *testing.T) {
	uc, _ := novoTratativaUC(t)

	in := tratativaValida()
	in.DataContato = "20/08/2026"
	_, err := uc.Registrar(context.Background(), "joao", in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// quando_volta_operar é opcional.
func TestTratativaRegistrar_RetornoOperacaoOpcional(t *testing.T) {
	uc, _ := novoTratativaUC(t)

	in := tratativaValida()
	in.QuandoVoltaOperar = ""
	out, err := uc.Registrar(context.Background(), "joao", in)
	require.NoError(t, err)
	assert.Nil(t, out.QuandoVoltaOperar)
}

func TestTratativaRegistrar_CamposObrigatorios(t *testing.T) {
	uc, _ := novoTratativaUC(t)

	in := tratativaValida()
	in.DescricaoTratativa = "   "
	_, err := uc.Registrar(context.Background(), "joao", in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// A listagem geral recorta pelo escopo hierárquico de quem pede.
func TestTratativaListar_RecortePorEscopo(t *testing.T) {
	uc, repo := novoTratativaUC(t)
	repo.tratativas = []entity.TratativaPontoAtivo{
		{ID: "t1", ChaveLoja: "L1", UsuarioID: "joao"},
		{ID: "t2", ChaveLoja: "L3", UsuarioID: "ana"},
	}

	deJoao, err := uc.Listar(context.Background(), "joao")
	require.NoError(t, err)
	require.Len(t, deJoao, 1)
	assert.Equal(t, "t1", deJoao[0].ID)

	deMaria, err := uc.Listar(context.Background(), "maria")
	require.NoError(t, err)
	assert.Len(t, deMaria, 2, "coordenadora enxerga os dois supervisores")

	deAdmin, err := uc.Listar(context.Background(), "igor")
	require.NoError(t, err)
	assert.Len(t, deAdmin, 2)
}

func TestTratativaListarPorLoja(t *testing.T) {
	uc, repo := novoTratativaUC(t)
	repo.tratativas = []entity.TratativaPontoAtivo{
		{ID: "t1", ChaveLoja: "L1", UsuarioID: "joao"},
		{ID: "t2", ChaveLoja: "L2", UsuarioID: "joao"},
	}

	tratativas, err := uc.ListarPorLoja(context.Background(), "L1")
	require.NoError(t, err)
	require.Len(t, tratativas, 1)
	assert.Equal(t, "t1", tratativas[0].ID)
}
