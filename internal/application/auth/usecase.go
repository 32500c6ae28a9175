package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
	"github.com/corbanhub/gestao-api/pkg/funcional"
	"github.com/corbanhub/gestao-api/pkg/jwt"
)

// Tamanho máximo do funcional no cadastro.
const funcionalMaxLength = 20

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Origem metadados da requisição, gravados na auditoria.
type Origem struct {
	IP        string
	UserAgent string
}

// AuthUseCase casos de uso de autenticação: login, logout e validação.
type AuthUseCase struct {
	usuarioRepo  repository.UsuarioRepository
	registroRepo repository.RegistroAcessoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, registroRepo repository.RegistroAcessoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, registroRepo: registroRepo, jwtCfg: jwtCfg}
}

// Login normaliza o funcional, confere a senha com bcrypt e emite o JWT.
// Toda tentativa é auditada: sucesso com LOGIN, senha incorreta com
// LOGIN_FAILED quando o funcional existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, origem Origem) (*dto.LoginResponse, error) {
	canonico := funcional.Normalizar(in.Funcional, funcional.Opcoes{MaxLength: funcionalMaxLength})
	if canonico == "" || in.Senha == "" {
		return nil, domain.ErrNaoAutorizado
	}

	usuario, err := uc.usuarioRepo.ObterPorFuncional(ctx, canonico)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrNaoAutorizado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		uc.registrar(ctx, usuario.ID, entity.AcaoLoginFalhou, origem,
			`{"reason":"senha incorreta"}`, entity.StatusFalha)
		return nil, domain.ErrNaoAutorizado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Funcional, usuario.Papel,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.registrar(ctx, usuario.ID, entity.AcaoLogin, origem, "{}", entity.StatusSucesso)

	return &dto.LoginResponse{
		Token:   token,
		Usuario: ToUsuarioResponse(usuario),
	}, nil
}

// Logout audita a saída voluntária do usuário.
func (uc *AuthUseCase) Logout(ctx context.Context, usuarioID string, origem Origem) error {
	uc.registrar(ctx, usuarioID, entity.AcaoLogout, origem,
		`{"reason":"logout voluntário"}`, entity.StatusSucesso)
	return nil
}

// registrar grava a auditoria em melhor esforço: falha de log nunca derruba
// o fluxo de autenticação.
func (uc *AuthUseCase) registrar(ctx context.Context, usuarioID, acao string, origem Origem, detalhes, status string) {
	_ = uc.registroRepo.Criar(ctx, &entity.RegistroAcesso{
		UsuarioID: usuarioID,
		TipoAcao:  acao,
		IP:        origem.IP,
		UserAgent: origem.UserAgent,
		Detalhes:  detalhes,
		Status:    status,
	})
}

// ToUsuarioResponse converte a entidade para o DTO público.
func ToUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	if u == nil {
		return dto.UsuarioResponse{}
	}
	return dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Funcional: u.Funcional,
		Papel:     u.Papel,
		Email:     u.Email,
		Chave:     u.Chave,
	}
}
