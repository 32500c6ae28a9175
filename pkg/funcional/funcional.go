// Package funcional normaliza o identificador de login dos colaboradores.
//
// O funcional legado pode vir com a primeira posição em forma mnemônica
// (letra a..i no lugar do dígito 1..9). A forma canônica usada pela
// aplicação é somente dígitos.
package funcional

import "strings"

// Opcoes parâmetros opcionais de normalização.
type Opcoes struct {
	MaxLength int // 0 = sem limite
}

// Normalizar converte um funcional bruto para a forma canônica numérica.
//
// Regras: trim + lowercase; primeira posição a..i vira 1..9, dígito é
// mantido, qualquer outro caractere é descartado; nas demais posições só
// dígitos são mantidos (letras não são mapeadas fora da primeira posição);
// por fim trunca em MaxLength quando definido.
//
// Sempre devolve uma string de dígitos, possivelmente vazia. Nunca falha.
func Normalizar(raw string, opts Opcoes) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	var b strings.Builder

	first := lower[0]
	switch {
	case first >= 'a' && first <= 'i':
		b.WriteByte('1' + (first - 'a'))
	case first >= '0' && first <= '9':
		b.WriteByte(first)
	}

	for i := 1; i < len(lower); i++ {
		if c := lower[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	normalizado := b.String()
	if opts.MaxLength > 0 && len(normalizado) > opts.MaxLength {
		return normalizado[:opts.MaxLength]
	}
	return normalizado
}

// ComPrefixoLetra devolve o funcional na forma legada: primeiro dígito 1..9
// vira a letra a..i correspondente. Entrada vazia é devolvida como veio.
func ComPrefixoLetra(numerico string) string {
	if numerico == "" {
		return numerico
	}
	first := numerico[0]
	if first >= '1' && first <= '9' {
		return string('a'+first-'1') + numerico[1:]
	}
	return numerico
}
