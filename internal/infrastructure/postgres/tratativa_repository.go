package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.TratativaPontoAtivoRepository = (*TratativaRepo)(nil)

// TratativaRepo adaptador PostgreSQL para tratativas de pontos ativos.
type TratativaRepo struct {
	db DBTX
}

func NewTratativaRepository(db DBTX) *TratativaRepo {
	return &TratativaRepo{db: db}
}

const colunasTratativa = `
	t.id, t.chave_loja, t.usuario_id, COALESCE(u.nome, ''),
	t.data_contato, t.foi_tratado, t.descricao_tratativa,
	t.quando_volta_operar, t.situacao, t.tipo, t.data_registro`

const deTratativa = `
	FROM tratativas_pontos_ativos t
	LEFT JOIN usuarios u ON u.id = t.usuario_id`

// Criar grava a tratativa e devolve a data de registro gerada.
func (r *TratativaRepo) Criar(ctx context.Context, t *entity.TratativaPontoAtivo) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `
		INSERT INTO tratativas_pontos_ativos
			(id, chave_loja, usuario_id, data_contato, foi_tratado,
			 descricao_tratativa, quando_volta_operar, situacao, tipo, data_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING data_registro`
	err := r.db.QueryRow(ctx, query,
		t.ID, t.ChaveLoja, t.UsuarioID, t.DataContato, t.FoiTratado,
		t.DescricaoTratativa, t.QuandoVoltaOperar, t.Situacao, t.Tipo,
	).Scan(&t.DataRegistro)
	if err != nil {
		return fmt.Errorf("criar tratativa: %w", err)
	}
	return nil
}

// ListarPorLoja histórico de uma loja, mais recente primeiro.
func (r *TratativaRepo) ListarPorLoja(ctx context.Context, chaveLoja string) ([]entity.TratativaPontoAtivo, error) {
	query := `SELECT ` + colunasTratativa + deTratativa + `
		WHERE t.chave_loja = $1
		ORDER BY t.data_registro DESC`
	rows, err := r.db.Query(ctx, query, chaveLoja)
	if err != nil {
		return nil, fmt.Errorf("listar tratativas da loja: %w", err)
	}
	defer rows.Close()
	return scanTratativas(rows)
}

// ListarPorUsuarios tratativas registradas pelos usuários do escopo.
func (r *TratativaRepo) ListarPorUsuarios(ctx context.Context, usuarioIDs []string, semRecorte bool) ([]entity.TratativaPontoAtivo, error) {
	query := `SELECT ` + colunasTratativa + deTratativa
	var args []any
	if !semRecorte {
		query += ` WHERE t.usuario_id = ANY($1)`
		args = append(args, usuarioIDs)
	}
	query += ` ORDER BY t.data_registro DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar tratativas: %w", err)
	}
	defer rows.Close()
	return scanTratativas(rows)
}

func scanTratativas(rows pgx.Rows) ([]entity.TratativaPontoAtivo, error) {
	var tratativas []entity.TratativaPontoAtivo
	for rows.Next() {
		var t entity.TratativaPontoAtivo
		if err := rows.Scan(
			&t.ID, &t.ChaveLoja, &t.UsuarioID, &t.NomeUsuario,
			&t.DataContato, &t.FoiTratado, &t.DescricaoTratativa,
			&t.QuandoVoltaOperar, &t.Situacao, &t.Tipo, &t.DataRegistro,
		); err != nil {
			return nil, fmt.Errorf("scan tratativa: %w", err)
		}
		tratativas = append(tratativas, t)
	}
	return tratativas, rows.Err()
}
