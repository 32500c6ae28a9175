package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)
var _ repository.HierarquiaRepository = (*UsuarioRepo)(nil)

// UsuarioRepo adaptador PostgreSQL para usuários e vínculos de hierarquia.
type UsuarioRepo struct {
	db DBTX
}

func NewUsuarioRepository(db DBTX) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const colunasUsuario = `id, nome, funcional, senha_hash, papel, COALESCE(email, ''), COALESCE(chave, 0)`

// ObterPorID busca um usuário pelo ID. Retorna nil, nil quando não existe.
func (r *UsuarioRepo) ObterPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + colunasUsuario + ` FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Nome, &u.Funcional, &u.SenhaHash, &u.Papel, &u.Email, &u.Chave,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter usuario por id: %w", err)
	}
	return &u, nil
}

// ObterPorFuncional busca pelo funcional já normalizado (forma numérica).
func (r *UsuarioRepo) ObterPorFuncional(ctx context.Context, funcional string) (*entity.Usuario, error) {
	query := `SELECT ` + colunasUsuario + ` FROM usuarios WHERE funcional = $1`
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, funcional).Scan(
		&u.ID, &u.Nome, &u.Funcional, &u.SenhaHash, &u.Papel, &u.Email, &u.Chave,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter usuario por funcional: %w", err)
	}
	return &u, nil
}

// ListarTodos devolve todos os usuários em ordem de nome.
func (r *UsuarioRepo) ListarTodos(ctx context.Context) ([]entity.Usuario, error) {
	query := `SELECT ` + colunasUsuario + ` FROM usuarios ORDER BY nome`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Funcional, &u.SenhaHash, &u.Papel, &u.Email, &u.Chave); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

// ListarVinculos devolve todos os pares subordinado -> superior.
func (r *UsuarioRepo) ListarVinculos(ctx context.Context) ([]entity.VinculoHierarquia, error) {
	query := `SELECT subordinado_id, superior_id FROM hierarquia`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar vinculos: %w", err)
	}
	defer rows.Close()

	var vinculos []entity.VinculoHierarquia
	for rows.Next() {
		var v entity.VinculoHierarquia
		if err := rows.Scan(&v.SubordinadoID, &v.SuperiorID); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		vinculos = append(vinculos, v)
	}
	return vinculos, rows.Err()
}
