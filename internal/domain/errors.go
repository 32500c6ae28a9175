package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado         = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado  = errors.New("usuário não encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrPapelInvalido         = errors.New("papel fora do conjunto permitido")
	ErrNaoAutorizado         = errors.New("não autorizado")
	ErrAcessoNegado          = errors.New("acesso negado")
	ErrIntegridadeHierarquia = errors.New("hierarquia inconsistente: ciclo ou profundidade excedida")
	ErrDivisaoPorZero        = errors.New("variação indefinida: mês anterior sem produção")
	ErrConflito              = errors.New("conflito com o estado atual")
)
