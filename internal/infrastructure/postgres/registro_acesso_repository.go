package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
)

var _ repository.RegistroAcessoRepository = (*RegistroAcessoRepo)(nil)

// RegistroAcessoRepo adaptador PostgreSQL para a auditoria de acesso.
type RegistroAcessoRepo struct {
	db DBTX
}

func NewRegistroAcessoRepository(db DBTX) *RegistroAcessoRepo {
	return &RegistroAcessoRepo{db: db}
}

// Criar grava uma entrada de auditoria.
func (r *RegistroAcessoRepo) Criar(ctx context.Context, reg *entity.RegistroAcesso) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	query := `
		INSERT INTO registros_acesso
			(id, usuario_id, tipo_acao, ip, user_agent, detalhes, status, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, NOW())
		RETURNING criado_em`
	err := r.db.QueryRow(ctx, query,
		reg.ID, reg.UsuarioID, reg.TipoAcao, reg.IP, reg.UserAgent, reg.Detalhes, reg.Status,
	).Scan(&reg.CriadoEm)
	if err != nil {
		return fmt.Errorf("criar registro de acesso: %w", err)
	}
	return nil
}

// Listar consulta a auditoria com os nomes da cadeia (coordenador e
// gerente) resolvidos via hierarquia, paginada e com total.
func (r *RegistroAcessoRepo) Listar(ctx context.Context, filtro repository.FiltroRegistros) ([]entity.RegistroAcesso, int, error) {
	base := `
		FROM registros_acesso ra
		JOIN usuarios u ON u.id = ra.usuario_id
		LEFT JOIN hierarquia hc ON hc.subordinado_id = u.id
		LEFT JOIN usuarios coord ON coord.id = hc.superior_id
		LEFT JOIN hierarquia hg ON hg.subordinado_id = coord.id
		LEFT JOIN usuarios ger ON ger.id = hg.superior_id
		WHERE 1=1`

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filtro.SemRecorte {
		base += ` AND ra.usuario_id = ANY(` + arg(filtro.UsuarioIDs) + `)`
	}
	if filtro.UsuarioID != "" {
		base += ` AND ra.usuario_id = ` + arg(filtro.UsuarioID)
	}
	if filtro.TipoAcao != "" {
		base += ` AND ra.tipo_acao = ` + arg(filtro.TipoAcao)
	}
	if filtro.Status != "" {
		base += ` AND ra.status = ` + arg(filtro.Status)
	}
	if filtro.Inicio != nil {
		base += ` AND ra.criado_em >= ` + arg(*filtro.Inicio)
	}
	if filtro.Fim != nil {
		base += ` AND ra.criado_em <= ` + arg(*filtro.Fim)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contar registros: %w", err)
	}

	query := `
		SELECT ra.id, ra.usuario_id, ra.tipo_acao,
			COALESCE(ra.ip, ''), COALESCE(ra.user_agent, ''),
			COALESCE(ra.detalhes::text, '{}'), ra.status, ra.criado_em,
			u.nome, u.funcional, u.papel,
			COALESCE(coord.nome, ''), COALESCE(ger.nome, '')` +
		base + `
		ORDER BY ra.criado_em DESC
		LIMIT ` + arg(filtro.Limit) + ` OFFSET ` + arg(filtro.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listar registros: %w", err)
	}
	defer rows.Close()

	var registros []entity.RegistroAcesso
	for rows.Next() {
		var reg entity.RegistroAcesso
		if err := rows.Scan(
			&reg.ID, &reg.UsuarioID, &reg.TipoAcao,
			&reg.IP, &reg.UserAgent,
			&reg.Detalhes, &reg.Status, &reg.CriadoEm,
			&reg.UsuarioNome, &reg.UsuarioFuncional, &reg.UsuarioPapel,
			&reg.CoordenadorNome, &reg.GerenteNome,
		); err != nil {
			return nil, 0, fmt.Errorf("scan registro: %w", err)
		}
		registros = append(registros, reg)
	}
	return registros, total, rows.Err()
}
