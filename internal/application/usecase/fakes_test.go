package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/corbanhub/gestao-api/internal/application/usecase"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios []entity.Usuario
	vinculos []entity.VinculoHierarquia
}

func (f *fakeUsuarioRepo) ObterPorID(_ context.Context, id string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) ObterPorFuncional(_ context.Context, funcional string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Funcional == funcional {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) ListarTodos(_ context.Context) ([]entity.Usuario, error) {
	return f.usuarios, nil
}

func (f *fakeUsuarioRepo) ListarVinculos(_ context.Context) ([]entity.VinculoHierarquia, error) {
	return f.vinculos, nil
}

type fakeHotlistRepo struct {
	itens      []entity.ItemHotlist
	tratativas []entity.TratativaHotlist

	falharTratativa bool
}

func (f *fakeHotlistRepo) ListarTodos(_ context.Context) ([]entity.ItemHotlist, error) {
	return f.itens, nil
}

func (f *fakeHotlistRepo) ListarPorSupervisores(_ context.Context, supervisorIDs []string) ([]entity.ItemHotlist, error) {
	permitidos := make(map[string]bool, len(supervisorIDs))
	for _, id := range supervisorIDs {
		permitidos[id] = true
	}
	var out []entity.ItemHotlist
	for _, item := range f.itens {
		if permitidos[item.SupervisorID] {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeHotlistRepo) ObterPorID(_ context.Context, id string) (*entity.ItemHotlist, error) {
	for _, item := range f.itens {
		if item.ID == id {
			item := item
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeHotlistRepo) AtualizarSituacao(_ context.Context, id, situacao string) error {
	for i := range f.itens {
		if f.itens[i].ID == id {
			f.itens[i].Situacao = situacao
			return nil
		}
	}
	return fmt.Errorf("lead %s não existe", id)
}

func (f *fakeHotlistRepo) CriarTratativa(_ context.Context, t *entity.TratativaHotlist) error {
	if f.falharTratativa {
		return fmt.Errorf("falha simulada de insert")
	}
	t.ID = fmt.Sprintf("trat-%d", len(f.tratativas)+1)
	f.tratativas = append(f.tratativas, *t)
	return nil
}

func (f *fakeHotlistRepo) ListarTratativas(_ context.Context, hotlistID string) ([]entity.TratativaHotlist, error) {
	var out []entity.TratativaHotlist
	for _, t := range f.tratativas {
		if t.HotlistID == hotlistID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeHotlistRepo) Resumo(_ context.Context, supervisorIDs []string, semRecorte bool) (repository.ResumoHotlist, error) {
	itens := f.itens
	if !semRecorte {
		var err error
		itens, err = f.ListarPorSupervisores(context.Background(), supervisorIDs)
		if err != nil {
			return repository.ResumoHotlist{}, err
		}
	}
	resumo := repository.ResumoHotlist{TotalLeads: len(itens)}
	for _, item := range itens {
		if item.Situacao == entity.LeadPendente {
			resumo.LeadsPendentes++
		}
	}
	return resumo, nil
}

// fakeUoW executa o callback direto sobre o repositório em memória. Quando o
// callback falha, desfaz as tratativas gravadas para emular o rollback.
type fakeUoW struct {
	hotlist *fakeHotlistRepo
}

func (f *fakeUoW) ComHotlist(ctx context.Context, fn func(ctx context.Context, hotlist repository.HotlistRepository) error) error {
	antesItens := append([]entity.ItemHotlist(nil), f.hotlist.itens...)
	antesTratativas := append([]entity.TratativaHotlist(nil), f.hotlist.tratativas...)
	if err := fn(ctx, f.hotlist); err != nil {
		f.hotlist.itens = antesItens
		f.hotlist.tratativas = antesTratativas
		return err
	}
	return nil
}

type fakeLojaRepo struct {
	lojas     []entity.Loja
	producoes []entity.ProducaoMensal

	ultimoFiltro repository.FiltroHierarquia
}

func (f *fakeLojaRepo) ListarPorHierarquia(_ context.Context, filtro repository.FiltroHierarquia) ([]entity.Loja, error) {
	f.ultimoFiltro = filtro
	return f.lojas, nil
}

func (f *fakeLojaRepo) ObterPorChave(_ context.Context, chaveLoja string) (*entity.Loja, error) {
	for _, l := range f.lojas {
		if l.ChaveLoja == chaveLoja {
			l := l
			return &l, nil
		}
	}
	return nil, nil
}

func (f *fakeLojaRepo) ListarProducao(_ context.Context, produto string, filtro repository.FiltroHierarquia) ([]entity.ProducaoMensal, error) {
	f.ultimoFiltro = filtro
	var out []entity.ProducaoMensal
	for _, p := range f.producoes {
		if p.Produto == produto {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTratativaRepo struct {
	tratativas []entity.TratativaPontoAtivo
}

func (f *fakeTratativaRepo) Criar(_ context.Context, t *entity.TratativaPontoAtivo) error {
	t.ID = fmt.Sprintf("tpa-%d", len(f.tratativas)+1)
	f.tratativas = append(f.tratativas, *t)
	return nil
}

func (f *fakeTratativaRepo) ListarPorLoja(_ context.Context, chaveLoja string) ([]entity.TratativaPontoAtivo, error) {
	var out []entity.TratativaPontoAtivo
	for _, t := range f.tratativas {
		if t.ChaveLoja == chaveLoja {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTratativaRepo) ListarPorUsuarios(_ context.Context, usuarioIDs []string, semRecorte bool) ([]entity.TratativaPontoAtivo, error) {
	if semRecorte {
		return f.tratativas, nil
	}
	permitidos := make(map[string]bool, len(usuarioIDs))
	for _, id := range usuarioIDs {
		permitidos[id] = true
	}
	var out []entity.TratativaPontoAtivo
	for _, t := range f.tratativas {
		if permitidos[t.UsuarioID] {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeRegistroRepo struct {
	registros []entity.RegistroAcesso

	ultimoFiltro repository.FiltroRegistros
}

func (f *fakeRegistroRepo) Criar(_ context.Context, r *entity.RegistroAcesso) error {
	r.ID = fmt.Sprintf("log-%d", len(f.registros)+1)
	f.registros = append(f.registros, *r)
	return nil
}

func (f *fakeRegistroRepo) Listar(_ context.Context, filtro repository.FiltroRegistros) ([]entity.RegistroAcesso, int, error) {
	f.ultimoFiltro = filtro
	permitidos := make(map[string]bool, len(filtro.UsuarioIDs))
	for _, id := range filtro.UsuarioIDs {
		permitidos[id] = true
	}
	var out []entity.RegistroAcesso
	for _, r := range f.registros {
		if !filtro.SemRecorte && !permitidos[r.UsuarioID] {
			continue
		}
		if filtro.TipoAcao != "" && r.TipoAcao != filtro.TipoAcao {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

type fakeEventoRepo struct {
	eventos []entity.Evento

	ultimoFiltro repository.FiltroEventos
}

func (f *fakeEventoRepo) Listar(_ context.Context, filtro repository.FiltroEventos) ([]entity.Evento, error) {
	f.ultimoFiltro = filtro
	permitidos := make(map[string]bool, len(filtro.SupervisorIDs))
	for _, id := range filtro.SupervisorIDs {
		permitidos[id] = true
	}
	var out []entity.Evento
	for _, ev := range f.eventos {
		if !filtro.SemRecorte && !permitidos[ev.SupervisorID] {
			continue
		}
		if filtro.Inicio != nil && ev.DataInicio.Before(*filtro.Inicio) {
			continue
		}
		if filtro.Fim != nil && ev.DataInicio.After(*filtro.Fim) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeEventoRepo) ObterPorID(_ context.Context, id string) (*entity.Evento, error) {
	for _, ev := range f.eventos {
		if ev.ID == id {
			ev := ev
			return &ev, nil
		}
	}
	return nil, nil
}

func (f *fakeEventoRepo) Criar(_ context.Context, ev *entity.Evento) error {
	ev.ID = fmt.Sprintf("ev-%d", len(f.eventos)+1)
	ev.CriadoEm = time.Now()
	ev.AtualizadoEm = ev.CriadoEm
	f.eventos = append(f.eventos, *ev)
	return nil
}

func (f *fakeEventoRepo) Atualizar(_ context.Context, ev *entity.Evento) error {
	for i := range f.eventos {
		if f.eventos[i].ID == ev.ID {
			ev.AtualizadoEm = time.Now()
			f.eventos[i] = *ev
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *fakeEventoRepo) AtualizarFeedback(_ context.Context, id, feedback string) error {
	for i := range f.eventos {
		if f.eventos[i].ID == id {
			f.eventos[i].Feedback = feedback
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *fakeEventoRepo) Excluir(_ context.Context, id string) error {
	for i := range f.eventos {
		if f.eventos[i].ID == id {
			f.eventos = append(f.eventos[:i], f.eventos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture da hierarquia: joao e ana supervisionam sob maria (coordenadora),
// que responde a carlos (gerente); igor é admin fora da árvore.
// ──────────────────────────────────────────────────────────────────────────────

func usuariosExemplo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{
		usuarios: []entity.Usuario{
			{ID: "joao", Nome: "João Silva", Funcional: "1000001", Papel: "supervisor", Chave: 101},
			{ID: "ana", Nome: "Ana Souza", Funcional: "1000002", Papel: "supervisor", Chave: 102},
			{ID: "maria", Nome: "Maria Lima", Funcional: "2000001", Papel: "coordenador", Chave: 201},
			{ID: "carlos", Nome: "Carlos Mota", Funcional: "3000001", Papel: "gerente", Chave: 301},
			{ID: "igor", Nome: "Igor Alves", Funcional: "9444168", Papel: "admin"},
		},
		vinculos: []entity.VinculoHierarquia{
			{SubordinadoID: "joao", SuperiorID: "maria"},
			{SubordinadoID: "ana", SuperiorID: "maria"},
			{SubordinadoID: "maria", SuperiorID: "carlos"},
		},
	}
}

func novoUsuarioUC(repo *fakeUsuarioRepo) *usecase.UsuarioUseCase {
	return usecase.NewUsuarioUseCase(repo, repo)
}
