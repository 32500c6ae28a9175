package entity

import "time"

// Tipos de ação registrados na auditoria.
const (
	AcaoLogin       = "LOGIN"
	AcaoLoginFalhou = "LOGIN_FAILED"
	AcaoLogout      = "LOGOUT"
)

// Status de um registro de acesso.
const (
	StatusSucesso = "SUCCESS"
	StatusFalha   = "FAILURE"
	StatusInfo    = "INFO"
)

// RegistroAcesso entrada de auditoria de ações do usuário.
type RegistroAcesso struct {
	ID        string
	UsuarioID string
	TipoAcao  string
	IP        string
	UserAgent string
	Detalhes  string // JSON livre
	Status    string
	CriadoEm  time.Time

	// Campos denormalizados para a listagem (preenchidos pelo repositório).
	UsuarioNome      string
	UsuarioFuncional string
	UsuarioPapel     string
	CoordenadorNome  string
	GerenteNome      string
}
