package hierarquia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
)

// Organização de exemplo:
//
//	Carlos (gerente)
//	└── Maria (coordenadora)
//	    ├── João (supervisor)
//	    └── Ana  (supervisora)
//	Igor (admin, fora da floresta)
func arvoreExemplo(t *testing.T) *hierarquia.Arvore {
	t.Helper()
	usuarios := []entity.Usuario{
		{ID: "joao", Nome: "João Silva", Funcional: "12345", Papel: hierarquia.PapelSupervisor},
		{ID: "maria", Nome: "Maria Santos", Funcional: "67890", Papel: hierarquia.PapelCoordenador},
		{ID: "carlos", Nome: "Carlos Oliveira", Funcional: "54321", Papel: hierarquia.PapelGerente},
		{ID: "ana", Nome: "Ana Costa", Funcional: "98765", Papel: hierarquia.PapelSupervisor},
		{ID: "igor", Nome: "Igor Alencar", Funcional: "9444168", Papel: hierarquia.PapelAdmin},
	}
	vinculos := []entity.VinculoHierarquia{
		{SubordinadoID: "joao", SuperiorID: "maria"},
		{SubordinadoID: "ana", SuperiorID: "maria"},
		{SubordinadoID: "maria", SuperiorID: "carlos"},
	}
	a, err := hierarquia.Nova(usuarios, vinculos)
	require.NoError(t, err)
	return a
}

func idsDe(usuarios []entity.Usuario) []string {
	ids := make([]string, 0, len(usuarios))
	for _, u := range usuarios {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestSubordinados_Diretos(t *testing.T) {
	a := arvoreExemplo(t)

	assert.Equal(t, []string{"joao", "ana"}, idsDe(a.Subordinados("maria")),
		"subordinados na ordem de carga")
	assert.Equal(t, []string{"maria"}, idsDe(a.Subordinados("carlos")))
	assert.Empty(t, a.Subordinados("joao"), "supervisor não tem subordinados")
}

func TestSubordinados_UsuarioInexistente_ListaVazia(t *testing.T) {
	a := arvoreExemplo(t)
	assert.Empty(t, a.Subordinados("fantasma"), "ausência devolve vazio, não erro")
}

func TestSuperior(t *testing.T) {
	a := arvoreExemplo(t)

	sup, ok := a.Superior("joao")
	require.True(t, ok)
	assert.Equal(t, "maria", sup.ID)

	sup, ok = a.Superior("maria")
	require.True(t, ok)
	assert.Equal(t, "carlos", sup.ID)

	_, ok = a.Superior("carlos")
	assert.False(t, ok, "topo da floresta não tem superior")
	_, ok = a.Superior("igor")
	assert.False(t, ok, "admin não tem superior")
	_, ok = a.Superior("fantasma")
	assert.False(t, ok)
}

// Consistência da relação inversa: o superior de cada subordinado de U é U.
func TestSuperiorDeCadaSubordinado_EhOProprioUsuario(t *testing.T) {
	a := arvoreExemplo(t)

	for _, id := range []string{"maria", "carlos"} {
		for _, sub := range a.Subordinados(id) {
			sup, ok := a.Superior(sub.ID)
			require.True(t, ok)
			assert.Equal(t, id, sup.ID)
		}
	}
}

func TestPorPapel(t *testing.T) {
	a := arvoreExemplo(t)

	supervisores, err := a.PorPapel(hierarquia.PapelSupervisor)
	require.NoError(t, err)
	assert.Equal(t, []string{"joao", "ana"}, idsDe(supervisores))

	admins, err := a.PorPapel(hierarquia.PapelAdmin)
	require.NoError(t, err)
	assert.Equal(t, []string{"igor"}, idsDe(admins))
}

func TestPorPapel_PapelInvalido(t *testing.T) {
	a := arvoreExemplo(t)

	_, err := a.PorPapel("diretor")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPapelInvalido,
		"papel fora do conjunto fechado é entrada inválida, não lista vazia")
}

func TestSupervisores_Coordenador_SomenteDiretos(t *testing.T) {
	a := arvoreExemplo(t)

	lista, err := a.Supervisores("maria")
	require.NoError(t, err)
	assert.Equal(t, []string{"joao", "ana"}, idsDe(lista))
}

func TestSupervisores_Gerente_IncluiIndiretos(t *testing.T) {
	a := arvoreExemplo(t)

	lista, err := a.Supervisores("carlos")
	require.NoError(t, err)
	assert.Equal(t, []string{"joao", "ana"}, idsDe(lista),
		"gerente enxerga supervisores dos coordenadores subordinados")
}

func TestSupervisores_SupervisorSemAcesso(t *testing.T) {
	a := arvoreExemplo(t)

	_, err := a.Supervisores("joao")
	assert.ErrorIs(t, err, domain.ErrAcessoNegado)

	_, err = a.Supervisores("fantasma")
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}

func TestEscopo_Admin_VeTudo(t *testing.T) {
	a := arvoreExemplo(t)

	escopo, err := a.EscopoVisibilidade("igor")
	require.NoError(t, err)
	assert.True(t, escopo.Total)
	assert.True(t, escopo.Permite("joao"))
	assert.True(t, escopo.Permite("qualquer-um"))
}

func TestEscopo_Supervisor_SomenteEleProprio(t *testing.T) {
	a := arvoreExemplo(t)

	escopo, err := a.EscopoVisibilidade("joao")
	require.NoError(t, err)
	assert.False(t, escopo.Total)
	assert.Equal(t, []string{"joao"}, escopo.IDs())
	assert.True(t, escopo.Permite("joao"))
	assert.False(t, escopo.Permite("ana"))
}

func TestEscopo_Coordenador_IncluiSubordinados(t *testing.T) {
	a := arvoreExemplo(t)

	escopo, err := a.EscopoVisibilidade("maria")
	require.NoError(t, err)
	assert.Equal(t, []string{"maria", "joao", "ana"}, escopo.IDs())
	assert.False(t, escopo.Permite("carlos"), "superior não entra no escopo do subordinado")
}

func TestEscopo_Gerente_Transitivo(t *testing.T) {
	a := arvoreExemplo(t)

	escopo, err := a.EscopoVisibilidade("carlos")
	require.NoError(t, err)
	assert.Equal(t, []string{"carlos", "maria", "joao", "ana"}, escopo.IDs())
}

func TestEscopo_UsuarioInexistente_FalhaFechado(t *testing.T) {
	a := arvoreExemplo(t)

	escopo, err := a.EscopoVisibilidade("fantasma")
	require.NoError(t, err)
	assert.True(t, escopo.Vazio())
	assert.False(t, escopo.Permite("joao"))
}

func TestEscopo_PapelDesconhecido_FalhaFechado(t *testing.T) {
	usuarios := []entity.Usuario{
		{ID: "x", Nome: "Papel Estranho", Papel: "estagiario"},
	}
	a, err := hierarquia.Nova(usuarios, nil)
	require.NoError(t, err)

	escopo, err := a.EscopoVisibilidade("x")
	require.NoError(t, err)
	assert.True(t, escopo.Vazio(), "papel desconhecido nunca abre o escopo")
}

func TestNova_SubordinadoComDoisSuperiores(t *testing.T) {
	usuarios := []entity.Usuario{
		{ID: "s", Papel: hierarquia.PapelSupervisor},
		{ID: "c1", Papel: hierarquia.PapelCoordenador},
		{ID: "c2", Papel: hierarquia.PapelCoordenador},
	}
	vinculos := []entity.VinculoHierarquia{
		{SubordinadoID: "s", SuperiorID: "c1"},
		{SubordinadoID: "s", SuperiorID: "c2"},
	}
	_, err := hierarquia.Nova(usuarios, vinculos)
	assert.ErrorIs(t, err, domain.ErrIntegridadeHierarquia)
}

func TestNova_SupervisorSubordinadoASupervisor(t *testing.T) {
	usuarios := []entity.Usuario{
		{ID: "s1", Papel: hierarquia.PapelSupervisor},
		{ID: "s2", Papel: hierarquia.PapelSupervisor},
	}
	vinculos := []entity.VinculoHierarquia{
		{SubordinadoID: "s1", SuperiorID: "s2"},
	}
	_, err := hierarquia.Nova(usuarios, vinculos)
	assert.ErrorIs(t, err, domain.ErrIntegridadeHierarquia)
}

func TestNova_VinculoOrfao_Ignorado(t *testing.T) {
	usuarios := []entity.Usuario{
		{ID: "c", Papel: hierarquia.PapelCoordenador},
	}
	vinculos := []entity.VinculoHierarquia{
		{SubordinadoID: "c", SuperiorID: "nao-carregado"},
	}
	a, err := hierarquia.Nova(usuarios, vinculos)
	require.NoError(t, err)
	_, ok := a.Superior("c")
	assert.False(t, ok)
}

func TestEscopo_CicloDetectado(t *testing.T) {
	// Ciclo entre dois coordenadores: c1 -> c2 -> c1.
	usuarios := []entity.Usuario{
		{ID: "c1", Papel: hierarquia.PapelCoordenador},
		{ID: "c2", Papel: hierarquia.PapelCoordenador},
	}
	vinculos := []entity.VinculoHierarquia{
		{SubordinadoID: "c1", SuperiorID: "c2"},
		{SubordinadoID: "c2", SuperiorID: "c1"},
	}
	a, err := hierarquia.Nova(usuarios, vinculos)
	require.NoError(t, err)

	_, err = a.EscopoVisibilidade("c1")
	assert.ErrorIs(t, err, domain.ErrIntegridadeHierarquia,
		"revisitar um nó deve abortar, não truncar em silêncio")
}

func TestEscopo_ProfundidadeExcedida(t *testing.T) {
	// Corrente de coordenadores mais funda que o limite.
	var usuarios []entity.Usuario
	var vinculos []entity.VinculoHierarquia
	total := hierarquia.ProfundidadeMax + 3
	for i := 0; i < total; i++ {
		usuarios = append(usuarios, entity.Usuario{
			ID: string(rune('a' + i)), Papel: hierarquia.PapelCoordenador,
		})
		if i > 0 {
			vinculos = append(vinculos, entity.VinculoHierarquia{
				SubordinadoID: string(rune('a' + i)),
				SuperiorID:    string(rune('a' + i - 1)),
			})
		}
	}
	a, err := hierarquia.Nova(usuarios, vinculos)
	require.NoError(t, err)

	_, err = a.EscopoVisibilidade("a")
	assert.ErrorIs(t, err, domain.ErrIntegridadeHierarquia)
}

func TestValidarPapel(t *testing.T) {
	for _, p := range []string{"supervisor", "coordenador", "gerente", "admin"} {
		assert.NoError(t, hierarquia.ValidarPapel(p))
	}
	assert.ErrorIs(t, hierarquia.ValidarPapel("Supervisor"), domain.ErrPapelInvalido,
		"conjunto é case-sensitive")
	assert.ErrorIs(t, hierarquia.ValidarPapel(""), domain.ErrPapelInvalido)
}
