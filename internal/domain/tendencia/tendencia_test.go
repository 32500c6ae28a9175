package tendencia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/tendencia"
)

func serie(chave string, m3, m2, m1, m0 int) tendencia.Serie {
	return tendencia.Serie{ChaveLoja: chave, M3: m3, M2: m2, M1: m1, M0: m0}
}

func chavesDe(series []tendencia.Serie) []string {
	var chaves []string
	for _, s := range series {
		chaves = append(chaves, s.ChaveLoja)
	}
	return chaves
}

func TestFiltros_LojaQueZerou(t *testing.T) {
	s := serie("L1", 10, 10, 5, 0)

	assert.True(t, s.Zerou())
	assert.False(t, s.Nova())
	assert.False(t, s.Voltou())
	assert.False(t, s.Estavel())
}

func TestFiltros_LojaNova_SemM2NaoEhRetomada(t *testing.T) {
	s := serie("L2", 0, 0, 0, 7)

	assert.True(t, s.Nova())
	assert.False(t, s.Voltou(), "sem produção em M2 não é retomada")
	assert.False(t, s.Zerou())
	assert.False(t, s.Estavel())
}

// Caso de sobreposição: M2>0, M1=0, M0>0 satisfaz Nova E Voltou ao mesmo
// tempo. Os filtros são independentes, então a loja entra nas duas visões.
func TestFiltros_SobreposicaoNovaEVoltou(t *testing.T) {
	s := serie("L3", 0, 4, 0, 7)

	assert.True(t, s.Nova())
	assert.True(t, s.Voltou())
	assert.False(t, s.Zerou())
	assert.False(t, s.Estavel())
}

func TestFiltros_LojaEstavel(t *testing.T) {
	s := serie("L4", 3, 4, 6, 9)

	assert.True(t, s.Estavel())
	assert.False(t, s.Zerou())
	assert.False(t, s.Nova())
	assert.False(t, s.Voltou())
}

func TestFiltros_InativaNosDoisMeses_NenhumaVisao(t *testing.T) {
	s := serie("L5", 0, 0, 0, 0)

	assert.False(t, s.Zerou())
	assert.False(t, s.Nova())
	assert.False(t, s.Voltou())
	assert.False(t, s.Estavel())
}

func TestClassificarTodas_PreservaOrdemESobreposicao(t *testing.T) {
	series := []tendencia.Serie{
		serie("A", 10, 10, 5, 0), // zerou
		serie("B", 0, 4, 0, 7),   // nova + voltou
		serie("C", 3, 4, 6, 9),   // estável
		serie("D", 0, 0, 0, 2),   // nova
		serie("E", 1, 2, 3, 0),   // zerou
	}

	c := tendencia.ClassificarTodas(series)

	assert.Equal(t, []string{"A", "E"}, chavesDe(c.Zeraram))
	assert.Equal(t, []string{"B", "D"}, chavesDe(c.Novas))
	assert.Equal(t, []string{"B"}, chavesDe(c.Voltaram), "B aparece em duas listas, sem dedup")
	assert.Equal(t, []string{"C"}, chavesDe(c.Estaveis))
}

func TestClassificarTodas_Vazia(t *testing.T) {
	c := tendencia.ClassificarTodas(nil)
	assert.Empty(t, c.Zeraram)
	assert.Empty(t, c.Novas)
	assert.Empty(t, c.Voltaram)
	assert.Empty(t, c.Estaveis)
}

func TestVariacaoPercentual(t *testing.T) {
	v, err := serie("L", 3, 4, 6, 9).VariacaoPercentual()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, v, 1e-9)

	v, err = serie("L", 0, 0, 8, 6).VariacaoPercentual()
	require.NoError(t, err)
	assert.InDelta(t, -25.0, v, 1e-9)
}

func TestVariacaoPercentual_M1Zerado(t *testing.T) {
	_, err := serie("L9", 0, 0, 0, 5).VariacaoPercentual()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDivisaoPorZero, "nunca devolver NaN ao painel")
}

func TestTendencia_Queda(t *testing.T) {
	assert.Equal(t, tendencia.TendenciaQueda, serie("L", 0, 0, 5, 0).Tendencia(),
		"zerou tendo produzido")
	assert.Equal(t, tendencia.TendenciaQueda, serie("L", 0, 0, 10, 7).Tendencia(),
		"queda de 30%")
}

func TestTendencia_Atencao(t *testing.T) {
	assert.Equal(t, tendencia.TendenciaAtencao, serie("L", 0, 0, 10, 9).Tendencia(),
		"queda moderada de 10%")
	assert.Equal(t, tendencia.TendenciaAtencao, serie("L", 0, 3, 0, 0).Tendencia(),
		"dois meses zerados com produção em M2")
}

func TestTendencia_Comecando(t *testing.T) {
	assert.Equal(t, tendencia.TendenciaComecando, serie("L", 0, 0, 10, 11).Tendencia(),
		"crescimento de 10%")
	assert.Equal(t, tendencia.TendenciaComecando, serie("L", 0, 4, 0, 7).Tendencia(),
		"retomada após mês zerado")
	assert.Equal(t, tendencia.TendenciaComecando, serie("L", 0, 0, 0, 2).Tendencia(),
		"primeira produção")
}

func TestTendencia_Estavel(t *testing.T) {
	assert.Equal(t, tendencia.TendenciaEstavel, serie("L", 0, 0, 10, 10).Tendencia())
	assert.Equal(t, tendencia.TendenciaEstavel, serie("L", 0, 0, 100, 104).Tendencia(),
		"variação de +4% fica na faixa estável")
	assert.Equal(t, tendencia.TendenciaEstavel, serie("L", 0, 0, 0, 0).Tendencia(),
		"sem histórico algum não é atenção")
}

func TestResumir(t *testing.T) {
	series := []tendencia.Serie{
		serie("A", 10, 10, 5, 0), // zerou, queda, sem movimento
		serie("B", 0, 4, 0, 7),   // nova + voltou, começando
		serie("C", 3, 4, 6, 9),   // estável, +50% => começando
		serie("D", 0, 0, 0, 0),   // sem movimento
	}

	r := tendencia.Resumir(series)

	assert.Equal(t, 16, r.TotalContasM0)
	assert.Equal(t, 11, r.TotalContasM1)
	assert.Equal(t, 5, r.VariacaoTotal)

	assert.Equal(t, 4, r.TotalLojas)
	assert.Equal(t, 2, r.LojasComProducaoM0)
	assert.Equal(t, 2, r.LojasComProducaoM1)
	assert.Equal(t, 1, r.LojasQueZeraram)
	assert.Equal(t, 1, r.LojasNovas)
	assert.Equal(t, 1, r.LojasQueVoltaram)
	assert.Equal(t, 1, r.LojasEstaveisAtivas)
	assert.Equal(t, 1, r.LojasQuedaProducao)
	assert.Equal(t, 2, r.LojasSemMovimento)

	assert.InDelta(t, 45.4545, r.CrescimentoPercentual, 1e-3)
	assert.InDelta(t, 50.0, r.ProdutividadeGeral, 1e-9)
	assert.Equal(t, 8, r.MediaPorLoja)

	assert.Equal(t, tendencia.ContagemTendencias{
		Comecando: 2, Estavel: 1, Atencao: 0, Queda: 1,
	}, r.Tendencias)
}

func TestResumir_Vazio_SemDivisaoPorZero(t *testing.T) {
	r := tendencia.Resumir(nil)
	assert.Zero(t, r.CrescimentoPercentual)
	assert.Zero(t, r.ProdutividadeGeral)
	assert.Zero(t, r.MediaPorLoja)
}
