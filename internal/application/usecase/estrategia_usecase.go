package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/corbanhub/gestao-api/internal/application/dto"
	"github.com/corbanhub/gestao-api/internal/domain"
	"github.com/corbanhub/gestao-api/internal/domain/entity"
	"github.com/corbanhub/gestao-api/internal/domain/hierarquia"
	"github.com/corbanhub/gestao-api/internal/domain/repository"
	"github.com/corbanhub/gestao-api/internal/domain/tendencia"
)

// Produtos de estratégia conhecidos pelo painel.
var produtosValidos = map[string]bool{
	"credito":           true,
	"abertura-conta":    true,
	"seguro":            true,
	"pontos-ativos":     true,
	"pontos-bloqueados": true,
}

// EstrategiaUseCase visões de estratégia comercial: lojas, métricas e
// análise de evolução, sempre recortadas pela cadeia de supervisão.
type EstrategiaUseCase struct {
	lojaRepo    repository.LojaRepository
	usuarioRepo repository.UsuarioRepository
}

func NewEstrategiaUseCase(lojaRepo repository.LojaRepository, usuarioRepo repository.UsuarioRepository) *EstrategiaUseCase {
	return &EstrategiaUseCase{lojaRepo: lojaRepo, usuarioRepo: usuarioRepo}
}

// filtroDe resolve o recorte de lojas do usuário. Admin enxerga tudo; os
// demais papéis precisam da chave da cadeia de supervisão no cadastro,
// sem ela o acesso é negado.
func (uc *EstrategiaUseCase) filtroDe(ctx context.Context, usuarioID string) (repository.FiltroHierarquia, *entity.Usuario, error) {
	usuario, err := uc.usuarioRepo.ObterPorID(ctx, usuarioID)
	if err != nil {
		return repository.FiltroHierarquia{}, nil, err
	}
	if usuario == nil {
		return repository.FiltroHierarquia{}, nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := hierarquia.ValidarPapel(usuario.Papel); err != nil {
		return repository.FiltroHierarquia{}, nil, err
	}
	if usuario.Papel != hierarquia.PapelAdmin && usuario.Chave == 0 {
		return repository.FiltroHierarquia{}, nil,
			fmt.Errorf("%w: usuário sem chave de supervisão", domain.ErrAcessoNegado)
	}
	return repository.FiltroHierarquia{Papel: usuario.Papel, Chave: usuario.Chave}, usuario, nil
}

// ValidarProduto confere se o produto pedido existe no painel.
func ValidarProduto(produto string) error {
	if !produtosValidos[produto] {
		return fmt.Errorf("%w: produto %q desconhecido", domain.ErrEntradaInvalida, produto)
	}
	return nil
}

// Lojas lista as lojas do recorte do usuário, com busca opcional
// insensível a acentos por nome, PDV, CNPJ ou chave.
func (uc *EstrategiaUseCase) Lojas(ctx context.Context, usuarioID, busca string) ([]dto.LojaResponse, error) {
	filtro, _, err := uc.filtroDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	lojas, err := uc.lojaRepo.ListarPorHierarquia(ctx, filtro)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LojaResponse, 0, len(lojas))
	for _, loja := range lojas {
		if busca != "" && !lojaCasaBusca(loja, busca) {
			continue
		}
		out = append(out, paraLojaResponse(loja))
	}
	return out, nil
}

// LojasComProducao junta as lojas do recorte com a janela mensal do
// produto e a tendência individual de cada uma.
func (uc *EstrategiaUseCase) LojasComProducao(ctx context.Context, usuarioID, produto string) ([]dto.LojaProducaoResponse, error) {
	if err := ValidarProduto(produto); err != nil {
		return nil, err
	}
	filtro, _, err := uc.filtroDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	lojas, err := uc.lojaRepo.ListarPorHierarquia(ctx, filtro)
	if err != nil {
		return nil, err
	}
	producoes, err := uc.lojaRepo.ListarProducao(ctx, produto, filtro)
	if err != nil {
		return nil, err
	}

	porChave := make(map[string]entity.ProducaoMensal, len(producoes))
	for _, p := range producoes {
		porChave[p.ChaveLoja] = p
	}

	out := make([]dto.LojaProducaoResponse, 0, len(lojas))
	for _, loja := range lojas {
		p := porChave[loja.ChaveLoja] // janela zerada quando sem produção
		serie := tendencia.SerieDe(p)
		out = append(out, dto.LojaProducaoResponse{
			LojaResponse:    paraLojaResponse(loja),
			MesM3:           p.MesM3,
			MesM2:           p.MesM2,
			MesM1:           p.MesM1,
			MesM0:           p.MesM0,
			DataUltAbertura: p.DataUltAbertura,
			Tendencia:       serie.Tendencia(),
		})
	}
	return out, nil
}

// Metricas agrega o resumo do produto para os cartões do painel.
func (uc *EstrategiaUseCase) Metricas(ctx context.Context, usuarioID, produto string) (*dto.MetricasResponse, error) {
	if err := ValidarProduto(produto); err != nil {
		return nil, err
	}
	filtro, usuario, err := uc.filtroDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	producoes, err := uc.lojaRepo.ListarProducao(ctx, produto, filtro)
	if err != nil {
		return nil, err
	}
	series := make([]tendencia.Serie, 0, len(producoes))
	for _, p := range producoes {
		series = append(series, tendencia.SerieDe(p))
	}

	return &dto.MetricasResponse{
		Resumo:  tendencia.Resumir(series),
		Produto: produto,
		Papel:   usuario.Papel,
		Chave:   usuario.Chave,
	}, nil
}

// Evolucao monta as quatro visões da análise de evolução do produto.
// As visões podem se sobrepor; cada total reflete a sua própria lista.
func (uc *EstrategiaUseCase) Evolucao(ctx context.Context, usuarioID, produto string) (*dto.EvolucaoResponse, error) {
	if err := ValidarProduto(produto); err != nil {
		return nil, err
	}
	filtro, _, err := uc.filtroDe(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	lojas, err := uc.lojaRepo.ListarPorHierarquia(ctx, filtro)
	if err != nil {
		return nil, err
	}
	producoes, err := uc.lojaRepo.ListarProducao(ctx, produto, filtro)
	if err != nil {
		return nil, err
	}

	lojaPorChave := make(map[string]entity.Loja, len(lojas))
	for _, loja := range lojas {
		lojaPorChave[loja.ChaveLoja] = loja
	}

	series := make([]tendencia.Serie, 0, len(producoes))
	for _, p := range producoes {
		series = append(series, tendencia.SerieDe(p))
	}
	classes := tendencia.ClassificarTodas(series)

	resp := &dto.EvolucaoResponse{
		Zeraram:  linhasEvolucao(classes.Zeraram, lojaPorChave, false),
		Novas:    linhasEvolucao(classes.Novas, lojaPorChave, false),
		Voltaram: linhasEvolucao(classes.Voltaram, lojaPorChave, false),
		Estaveis: linhasEvolucao(classes.Estaveis, lojaPorChave, true),
	}
	resp.TotalZeraram = len(resp.Zeraram)
	resp.TotalNovas = len(resp.Novas)
	resp.TotalVoltaram = len(resp.Voltaram)
	resp.TotalEstaveis = len(resp.Estaveis)
	return resp, nil
}

// linhasEvolucao converte séries em linhas de exibição. A variação só é
// calculada na visão de estáveis, onde M1 > 0 por construção.
func linhasEvolucao(series []tendencia.Serie, lojas map[string]entity.Loja, comVariacao bool) []dto.EvolucaoLinha {
	out := make([]dto.EvolucaoLinha, 0, len(series))
	for _, s := range series {
		loja := lojas[s.ChaveLoja]
		linha := dto.EvolucaoLinha{
			ChaveLoja:   s.ChaveLoja,
			NomeLoja:    loja.NomeLoja,
			CNPJ:        loja.CNPJ,
			NomeContato: loja.NomeContato,
			Telefone:    loja.Telefone,
			MesM2:       s.M2,
			MesM1:       s.M1,
			MesM0:       s.M0,
		}
		if comVariacao {
			if v, err := s.VariacaoPercentual(); err == nil {
				linha.Variacao = &v
			}
		}
		out = append(out, linha)
	}
	return out
}

func lojaCasaBusca(loja entity.Loja, termo string) bool {
	return ContemTermo(loja.NomeLoja, termo) ||
		ContemTermo(loja.NomePDV, termo) ||
		strings.Contains(loja.CNPJ, strings.TrimSpace(termo)) ||
		strings.Contains(loja.ChaveLoja, strings.TrimSpace(termo))
}

func paraLojaResponse(loja entity.Loja) dto.LojaResponse {
	return dto.LojaResponse{
		ChaveLoja:   loja.ChaveLoja,
		CNPJ:        loja.CNPJ,
		NomeLoja:    loja.NomeLoja,
		NomePDV:     loja.NomePDV,
		Situacao:    loja.Situacao,
		Endereco:    loja.Endereco,
		Telefone:    loja.Telefone,
		NomeContato: loja.NomeContato,
		ProdutosHabilitados: dto.ProdutosHabilitadosDTO{
			Consignado:   loja.Produtos.Consignado,
			Microsseguro: loja.Produtos.Microsseguro,
			Lime:         loja.Produtos.Lime,
			Conta:        loja.Produtos.Conta,
		},
		SaldoCx:           loja.SaldoCx,
		Limite:            loja.Limite,
		DataInauguracao:   loja.DataInauguracao,
		DataCertificacao:  loja.DataCertificacao,
		DataUltTransacao:  loja.DataUltTransacao,
		DataBloqueio:      loja.DataBloqueio,
		MotivoBloqueio:    loja.MotivoBloqueio,
		SituacaoTablet:    loja.SituacaoTablet,
		DescSupervisao:    loja.DescSupervisao,
		DescCoordenacao:   loja.DescCoordenacao,
		DescGerenciaArea:  loja.DescGerenciaArea,
		GerenciaRegional:  loja.GerenciaRegional,
		DiretoriaRegional: loja.DiretoriaRegional,
		AgRelacionamento:  loja.AgRelacionamento,
		Multiplicador:     loja.Multiplicador,
	}
}
