package entity

import "time"

// Evento compromisso de agenda de um supervisor (visita, reunião, ação comercial).
type Evento struct {
	ID              string
	Titulo          string
	Descricao       string
	DataInicio      time.Time
	DataFim         time.Time
	TipoEvento      string
	Location        string
	Subcategoria    string
	OutraDescricao  string
	InformarAgencia bool
	NumeroAgencia   string
	IsPA            bool
	Municipio       string
	UF              string
	Feedback        string
	SupervisorID    string
	SupervisorNome  string
	CriadoEm        time.Time
	AtualizadoEm    time.Time
}
