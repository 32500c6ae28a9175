package dto

import "time"

// EventoRequest criação/atualização de um evento de agenda.
type EventoRequest struct {
	Titulo          string `json:"title"`
	Descricao       string `json:"description"`
	DataInicio      string `json:"start_date"` // RFC 3339
	DataFim         string `json:"end_date"`
	TipoEvento      string `json:"event_type"`
	Location        string `json:"location"`
	Subcategoria    string `json:"subcategory"`
	OutraDescricao  string `json:"other_description"`
	InformarAgencia bool   `json:"inform_agency"`
	NumeroAgencia   string `json:"agency_number"`
	IsPA            bool   `json:"is_pa"`
	Municipio       string `json:"municipality"`
	UF              string `json:"state"`
}

// FeedbackRequest registro do retorno de um evento realizado.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// EventoResponse evento exposto na agenda.
type EventoResponse struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"title"`
	Descricao       string    `json:"description,omitempty"`
	DataInicio      time.Time `json:"start_date"`
	DataFim         time.Time `json:"end_date"`
	TipoEvento      string    `json:"event_type"`
	Location        string    `json:"location,omitempty"`
	Subcategoria    string    `json:"subcategory,omitempty"`
	OutraDescricao  string    `json:"other_description,omitempty"`
	InformarAgencia bool      `json:"inform_agency"`
	NumeroAgencia   string    `json:"agency_number,omitempty"`
	IsPA            bool      `json:"is_pa"`
	Municipio       string    `json:"municipality,omitempty"`
	UF              string    `json:"state,omitempty"`
	Feedback        string    `json:"feedback,omitempty"`
	SupervisorID    string    `json:"supervisor_id"`
	SupervisorNome  string    `json:"supervisor_name,omitempty"`
	CriadoEm        time.Time `json:"created_at"`
	AtualizadoEm    time.Time `json:"updated_at"`
}
