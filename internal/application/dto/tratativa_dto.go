package dto

import "time"

// TratativaPontoAtivoRequest registro de contato com um ponto ativo.
type TratativaPontoAtivoRequest struct {
	ChaveLoja          string `json:"chave_loja"`
	DataContato        string `json:"data_contato"` // YYYY-MM-DD
	FoiTratado         string `json:"foi_tratado"`  // sim | nao
	DescricaoTratativa string `json:"descricao_tratativa"`
	QuandoVoltaOperar  string `json:"quando_volta_operar"` // YYYY-MM-DD
	Situacao           string `json:"situacao"`            // tratada | pendente
	Tipo               string `json:"tipo"`
}

// TratativaPontoAtivoResponse tratativa gravada.
type TratativaPontoAtivoResponse struct {
	ID                 string     `json:"id"`
	ChaveLoja          string     `json:"chave_loja"`
	UsuarioID          string     `json:"usuario_id"`
	NomeUsuario        string     `json:"nome_usuario"`
	DataContato        time.Time  `json:"data_contato"`
	FoiTratado         string     `json:"foi_tratado"`
	DescricaoTratativa string     `json:"descricao_tratativa"`
	QuandoVoltaOperar  *time.Time `json:"quando_volta_operar,omitempty"`
	Situacao           string     `json:"situacao"`
	Tipo               string     `json:"tipo"`
	DataRegistro       time.Time  `json:"data_registro"`
}
