package dto

import "time"

// RegistroAcessoRequest log disparado pelo cliente.
type RegistroAcessoRequest struct {
	TipoAcao string `json:"actionType"`
	Detalhes string `json:"details"`
	Status   string `json:"status"`
}

// RegistroAcessoResponse entrada de auditoria na listagem.
type RegistroAcessoResponse struct {
	ID               string    `json:"id"`
	UsuarioID        string    `json:"user_id"`
	UsuarioNome      string    `json:"user_name"`
	UsuarioFuncional string    `json:"user_funcional"`
	UsuarioPapel     string    `json:"user_role"`
	TipoAcao         string    `json:"action_type"`
	IP               string    `json:"ip_address,omitempty"`
	UserAgent        string    `json:"user_agent,omitempty"`
	Detalhes         string    `json:"details,omitempty"`
	Status           string    `json:"status"`
	CoordenadorNome  string    `json:"coordinator_name,omitempty"`
	GerenteNome      string    `json:"manager_name,omitempty"`
	CriadoEm         time.Time `json:"created_at"`
}

// RegistrosAcessoPage página da auditoria.
type RegistrosAcessoPage struct {
	Registros []RegistroAcessoResponse `json:"logs"`
	Page      PageResponse             `json:"page"`
}
