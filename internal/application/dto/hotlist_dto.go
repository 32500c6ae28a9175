package dto

import "time"

// ItemHotlistResponse lead visível na listagem.
type ItemHotlistResponse struct {
	ID                string `json:"id"`
	SupervisorID      string `json:"supervisor_id"`
	SupervisorNome    string `json:"supervisor_name"`
	CNPJ              string `json:"cnpj"`
	NomeLoja          string `json:"nome_loja"`
	Localizacao       string `json:"localizacao"`
	Agencia           string `json:"agencia"`
	Mercado           string `json:"mercado"`
	PracaPresenca     string `json:"praca_presenca"`
	Situacao          string `json:"situacao"`
	DiretoriaRegional string `json:"diretoria_regional"`
	GerenciaRegional  string `json:"gerencia_regional"`
	PA                string `json:"pa"`
	GerentePJ         string `json:"gerente_pj"`
}

// AtualizarSituacaoRequest corpo do PATCH de situação do lead.
type AtualizarSituacaoRequest struct {
	Situacao string `json:"situacao"`
}

// TratativaHotlistRequest registro de contato sobre um lead.
type TratativaHotlistRequest struct {
	HotlistID string `json:"hotlist_id"`
	Descricao string `json:"descricao"`
	Situacao  string `json:"situacao"` // realizada | pendente
}

// TratativaHotlistResponse tratativa gravada, com o autor resolvido.
type TratativaHotlistResponse struct {
	ID            string    `json:"id"`
	HotlistID     string    `json:"hotlist_id"`
	UsuarioID     string    `json:"user_id"`
	UsuarioNome   string    `json:"user_name"`
	Descricao     string    `json:"descricao"`
	Situacao      string    `json:"situacao"`
	DataTratativa time.Time `json:"data_tratativa"`
}

// ResumoHotlistResponse contadores do painel.
type ResumoHotlistResponse struct {
	TotalLeads     int `json:"totalLeads"`
	LeadsPendentes int `json:"leadsPendentes"`
}
