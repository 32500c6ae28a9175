package entity

import "time"

// Valores aceitos no registro de tratativas de pontos ativos.
const (
	TratativaRealizada = "tratada"
	TratativaPendente  = "pendente"
)

// TratativaPontoAtivo contato registrado sobre um ponto ativo da rede.
// Imutável após gravada; não há caminho de update/delete.
type TratativaPontoAtivo struct {
	ID                 string
	ChaveLoja          string
	UsuarioID          string
	NomeUsuario        string
	DataContato        time.Time
	FoiTratado         string // "sim" | "nao"
	DescricaoTratativa string
	QuandoVoltaOperar  *time.Time
	Situacao           string // tratada | pendente
	Tipo               string // pontos-ativos, pontos-bloqueados, ...
	DataRegistro       time.Time
}
