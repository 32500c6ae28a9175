package entity

import "time"

// Situações de um lead da hotlist.
const (
	LeadPendente    = "pendente"
	LeadTratado     = "tratada"
	LeadProspectado = "prospectada"
)

// Situações de uma tratativa de lead. A situação do lead é derivada:
// tratativa realizada marca o lead como tratado, qualquer outra o devolve
// a pendente.
const (
	TratativaHotlistRealizada = "realizada"
	TratativaHotlistPendente  = "pendente"
)

// ItemHotlist lead de prospecção atribuído a um supervisor.
type ItemHotlist struct {
	ID                string
	SupervisorID      string
	SupervisorNome    string
	CNPJ              string
	NomeLoja          string
	Localizacao       string
	Agencia           string
	Mercado           string
	PracaPresenca     string
	Situacao          string
	DiretoriaRegional string
	GerenciaRegional  string
	PA                string
	GerentePJ         string
}

// TratativaHotlist contato registrado sobre um lead. Imutável após gravada.
type TratativaHotlist struct {
	ID            string
	HotlistID     string
	UsuarioID     string
	UsuarioNome   string
	Descricao     string
	Situacao      string // realizada, pendente
	DataTratativa time.Time
}
