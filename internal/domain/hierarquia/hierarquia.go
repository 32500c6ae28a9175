// Package hierarquia resolve a visibilidade de registros pela cadeia de
// supervisão (supervisor -> coordenador/gerente -> admin).
//
// A floresta é carregada uma única vez em uma arena de nós com índices de
// pai/filhos; as consultas viram caminhadas locais no grafo, com limite de
// profundidade e detecção de ciclo para dados malformados.
package hierarquia

import (
	"fmt"

	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
)

// Papéis válidos (conjunto fechado, case-sensitive).
const (
	PapelSupervisor  = "supervisor"
	PapelCoordenador = "coordenador"
	PapelGerente     = "gerente"
	PapelAdmin       = "admin"
)

// ProfundidadeMax limite de caminhada na floresta. Nenhuma organização real
// passa de 10 níveis; exceder isso indica dado corrompido, não hierarquia funda.
const ProfundidadeMax = 10

// ValidarPapel verifica se o papel pertence ao conjunto fechado.
func ValidarPapel(papel string) error {
	switch papel {
	case PapelSupervisor, PapelCoordenador, PapelGerente, PapelAdmin:
		return nil
	}
	return fmt.Errorf("%w: %q", domain.ErrPapelInvalido, papel)
}

type no struct {
	usuario entity.Usuario
	pai     int   // índice na arena, -1 se não tem superior
	filhos  []int // índices na arena, na ordem de entrada dos usuários
}

// Arvore arena imutável da floresta de supervisão.
type Arvore struct {
	nos    []no
	indice map[string]int // usuário ID -> índice na arena
}

// Nova monta a arena a partir dos usuários e vínculos carregados.
//
// Vínculos que referenciam usuários desconhecidos são ignorados (a hierarquia
// muda com o tempo e a carga pode estar defasada). Um subordinado com mais de
// um superior, ou um supervisor subordinado a quem não é coordenador nem
// gerente, é erro de integridade.
func Nova(usuarios []entity.Usuario, vinculos []entity.VinculoHierarquia) (*Arvore, error) {
	a := &Arvore{
		nos:    make([]no, 0, len(usuarios)),
		indice: make(map[string]int, len(usuarios)),
	}
	for _, u := range usuarios {
		if _, ok := a.indice[u.ID]; ok {
			return nil, fmt.Errorf("%w: usuário %s duplicado", domain.ErrIntegridadeHierarquia, u.ID)
		}
		a.indice[u.ID] = len(a.nos)
		a.nos = append(a.nos, no{usuario: u, pai: -1})
	}

	for _, v := range vinculos {
		sub, okSub := a.indice[v.SubordinadoID]
		sup, okSup := a.indice[v.SuperiorID]
		if !okSub || !okSup {
			continue // vínculo órfão
		}
		if a.nos[sub].pai != -1 {
			return nil, fmt.Errorf("%w: subordinado %s com mais de um superior",
				domain.ErrIntegridadeHierarquia, v.SubordinadoID)
		}
		if a.nos[sub].usuario.Papel == PapelSupervisor {
			if p := a.nos[sup].usuario.Papel; p != PapelCoordenador && p != PapelGerente {
				return nil, fmt.Errorf("%w: supervisor %s subordinado a %s",
					domain.ErrIntegridadeHierarquia, v.SubordinadoID, p)
			}
		}
		a.nos[sub].pai = sup
	}

	// Filhos na ordem de entrada dos usuários, para resultados determinísticos.
	for i := range a.nos {
		if p := a.nos[i].pai; p != -1 {
			a.nos[p].filhos = append(a.nos[p].filhos, i)
		}
	}
	return a, nil
}

// Subordinados devolve os subordinados diretos de um usuário, na ordem de
// carga. Usuário inexistente devolve lista vazia: ausência não é erro.
func (a *Arvore) Subordinados(usuarioID string) []entity.Usuario {
	idx, ok := a.indice[usuarioID]
	if !ok {
		return nil
	}
	subs := make([]entity.Usuario, 0, len(a.nos[idx].filhos))
	for _, f := range a.nos[idx].filhos {
		subs = append(subs, a.nos[f].usuario)
	}
	return subs
}

// Superior devolve o superior direto, se houver. Admins e usuários sem
// vínculo (ou inexistentes) devolvem ok=false.
func (a *Arvore) Superior(usuarioID string) (entity.Usuario, bool) {
	idx, ok := a.indice[usuarioID]
	if !ok || a.nos[idx].pai == -1 {
		return entity.Usuario{}, false
	}
	return a.nos[a.nos[idx].pai].usuario, true
}

// Usuario devolve o usuário carregado na arena.
func (a *Arvore) Usuario(usuarioID string) (entity.Usuario, bool) {
	idx, ok := a.indice[usuarioID]
	if !ok {
		return entity.Usuario{}, false
	}
	return a.nos[idx].usuario, true
}

// PorPapel devolve todos os usuários com o papel dado, na ordem de carga.
// Papel fora do conjunto fechado é entrada inválida, distinta de "sem dados".
func (a *Arvore) PorPapel(papel string) ([]entity.Usuario, error) {
	if err := ValidarPapel(papel); err != nil {
		return nil, err
	}
	var lista []entity.Usuario
	for _, n := range a.nos {
		if n.usuario.Papel == papel {
			lista = append(lista, n.usuario)
		}
	}
	return lista, nil
}

// Supervisores devolve os supervisores visíveis a um coordenador (diretos)
// ou gerente (diretos mais os dos coordenadores subordinados). Outros papéis
// não têm acesso a essa visão.
func (a *Arvore) Supervisores(usuarioID string) ([]entity.Usuario, error) {
	idx, ok := a.indice[usuarioID]
	if !ok {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	papel := a.nos[idx].usuario.Papel
	if papel != PapelCoordenador && papel != PapelGerente {
		return nil, domain.ErrAcessoNegado
	}

	var lista []entity.Usuario
	for _, f := range a.nos[idx].filhos {
		filho := a.nos[f].usuario
		if filho.Papel == PapelSupervisor {
			lista = append(lista, filho)
		}
		if papel == PapelGerente && filho.Papel == PapelCoordenador {
			for _, neto := range a.nos[f].filhos {
				if a.nos[neto].usuario.Papel == PapelSupervisor {
					lista = append(lista, a.nos[neto].usuario)
				}
			}
		}
	}
	return lista, nil
}

// Escopo conjunto de donos de registro visíveis a um usuário.
type Escopo struct {
	// Total indica visão irrestrita (admin): Permite devolve true para tudo.
	Total bool

	ids    map[string]struct{}
	ordem  []string
}

// Permite informa se registros do dono indicado são visíveis neste escopo.
func (e Escopo) Permite(donoID string) bool {
	if e.Total {
		return true
	}
	_, ok := e.ids[donoID]
	return ok
}

// IDs devolve os donos do escopo em ordem determinística (vazio quando Total).
func (e Escopo) IDs() []string {
	return e.ordem
}

// Vazio informa se o escopo não permite nenhum registro.
func (e Escopo) Vazio() bool {
	return !e.Total && len(e.ordem) == 0
}

// EscopoVisibilidade calcula o escopo de registros do usuário:
//
//	admin                 -> tudo, sem filtro;
//	gerente/coordenador   -> ele próprio mais todos os subordinados transitivos;
//	supervisor            -> apenas ele próprio;
//	qualquer outro papel  -> escopo vazio (falha fechado, nunca aberto).
//
// A caminhada é limitada a ProfundidadeMax níveis; revisitar um nó ou exceder
// o limite aborta com erro de integridade em vez de truncar em silêncio.
func (a *Arvore) EscopoVisibilidade(usuarioID string) (Escopo, error) {
	idx, ok := a.indice[usuarioID]
	if !ok {
		return Escopo{}, nil // usuário desconhecido: escopo vazio
	}

	switch a.nos[idx].usuario.Papel {
	case PapelAdmin:
		return Escopo{Total: true}, nil
	case PapelSupervisor:
		return escopoDe([]string{usuarioID}), nil
	case PapelGerente, PapelCoordenador:
		visitados := map[int]struct{}{idx: {}}
		ordem := []string{usuarioID}
		if err := a.coletar(idx, 1, visitados, &ordem); err != nil {
			return Escopo{}, err
		}
		return escopoDe(ordem), nil
	default:
		return Escopo{}, nil
	}
}

func (a *Arvore) coletar(idx, profundidade int, visitados map[int]struct{}, ordem *[]string) error {
	if profundidade > ProfundidadeMax {
		return fmt.Errorf("%w: profundidade > %d a partir de %s",
			domain.ErrIntegridadeHierarquia, ProfundidadeMax, a.nos[idx].usuario.ID)
	}
	for _, f := range a.nos[idx].filhos {
		if _, repetido := visitados[f]; repetido {
			return fmt.Errorf("%w: nó %s revisitado",
				domain.ErrIntegridadeHierarquia, a.nos[f].usuario.ID)
		}
		visitados[f] = struct{}{}
		*ordem = append(*ordem, a.nos[f].usuario.ID)
		if err := a.coletar(f, profundidade+1, visitados, ordem); err != nil {
			return err
		}
	}
	return nil
}

func escopoDe(ordem []string) Escopo {
	ids := make(map[string]struct{}, len(ordem))
	for _, id := range ordem {
		ids[id] = struct{}{}
	}
	return Escopo{ids: ids, ordem: ordem}
}
