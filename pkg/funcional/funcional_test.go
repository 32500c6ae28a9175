package funcional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corbanhub/gestao-api/pkg/funcional"
)

func TestNormalizar_PrimeiraLetraMapeada(t *testing.T) {
	// 'a' na primeira posição vira '1'; 'b' no meio é descartado, não mapeado.
	got := funcional.Normalizar("A1234B", funcional.Opcoes{MaxLength: 7})
	assert.Equal(t, "11234", got)
}

func TestNormalizar_TodasAsLetrasIniciais(t *testing.T) {
	casos := map[string]string{
		"a000": "1000",
		"b000": "2000",
		"c000": "3000",
		"d000": "4000",
		"e000": "5000",
		"f000": "6000",
		"g000": "7000",
		"h000": "8000",
		"i000": "9000",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, funcional.Normalizar(entrada, funcional.Opcoes{}), "entrada %q", entrada)
	}
}

func TestNormalizar_JaNumerico(t *testing.T) {
	got := funcional.Normalizar("9444168", funcional.Opcoes{})
	assert.Equal(t, "9444168", got)
}

func TestNormalizar_Vazio(t *testing.T) {
	assert.Equal(t, "", funcional.Normalizar("", funcional.Opcoes{MaxLength: 7}))
	assert.Equal(t, "", funcional.Normalizar("   ", funcional.Opcoes{MaxLength: 7}))
}

func TestNormalizar_PrimeiraLetraForaDoMapa(t *testing.T) {
	// 'j' não participa do mnemônico: primeira posição é descartada.
	assert.Equal(t, "123", funcional.Normalizar("j123", funcional.Opcoes{}))
	// 'x' idem, inclusive com maiúscula.
	assert.Equal(t, "77", funcional.Normalizar("X7a7", funcional.Opcoes{}))
}

func TestNormalizar_TruncaNoMaxLength(t *testing.T) {
	got := funcional.Normalizar("  a12345678  ", funcional.Opcoes{MaxLength: 7})
	assert.Equal(t, "1123456", got)
	assert.LessOrEqual(t, len(got), 7)
}

func TestNormalizar_EspacosEMistura(t *testing.T) {
	assert.Equal(t, "9444168", funcional.Normalizar(" 9-44.41 68 ", funcional.Opcoes{}))
}

func TestComPrefixoLetra(t *testing.T) {
	assert.Equal(t, "i444168", funcional.ComPrefixoLetra("9444168"))
	assert.Equal(t, "a2345", funcional.ComPrefixoLetra("12345"))
	// Primeiro caractere '0' ou não numérico fica como está.
	assert.Equal(t, "0123", funcional.ComPrefixoLetra("0123"))
	assert.Equal(t, "", funcional.ComPrefixoLetra(""))
}

func TestNormalizarComPrefixoLetra_Inversos(t *testing.T) {
	original := "9444168"
	legado := funcional.ComPrefixoLetra(original)
	assert.Equal(t, original, funcional.Normalizar(legado, funcional.Opcoes{}))
}
