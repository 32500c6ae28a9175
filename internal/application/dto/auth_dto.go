package dto

// LoginRequest credenciais de entrada. O funcional é aceito na forma
// mnemônica (letra inicial) ou numérica; a normalização acontece no use case.
type LoginRequest struct {
	Funcional string `json:"funcional"`
	Senha     string `json:"senha"`
}

// UsuarioResponse usuário exposto na API (nunca inclui o hash de senha).
type UsuarioResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"name"`
	Funcional string `json:"funcional"`
	Papel     string `json:"role"`
	Email     string `json:"email,omitempty"`
	Chave     int64  `json:"chave,omitempty"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"user"`
}
