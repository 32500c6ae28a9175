package entity

// Usuario representa um colaborador da rede (provisionado externamente;
// leitura apenas, exceto senha/hash no login).
type Usuario struct {
	ID        string
	Nome      string
	Funcional string // identificador de login, somente dígitos
	SenhaHash string // bcrypt, nunca plano após persistir
	Papel     string // supervisor, coordenador, gerente, admin
	Email     string
	Chave     int64 // chave de hierarquia no datawarehouse (0 = sem chave)
}

// VinculoHierarquia aresta dirigida subordinado -> superior.
// Cada subordinado tem no máximo um superior; admins não têm.
type VinculoHierarquia struct {
	SubordinadoID string
	SuperiorID    string
}
