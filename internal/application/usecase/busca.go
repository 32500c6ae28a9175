package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacriticos decompõe e descarta acentos para busca insensível.
var removeDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarBusca prepara um termo para comparação: sem acentos, minúsculo
// e sem espaços nas pontas. "São Paulo" e "sao paulo" casam.
func NormalizarBusca(termo string) string {
	simples, _, err := transform.String(removeDiacriticos, termo)
	if err != nil {
		simples = termo
	}
	return strings.ToLower(strings.TrimSpace(simples))
}

// ContemTermo verifica se o texto contém o termo, ambos normalizados.
func ContemTermo(texto, termo string) bool {
	if termo == "" {
		return true
	}
	return strings.Contains(NormalizarBusca(texto), NormalizarBusca(termo))
}
