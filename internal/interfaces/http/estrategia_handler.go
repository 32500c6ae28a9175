package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/corbanhub/gestao-api/internal/application/export"
	"github.com/corbanhub/gestao-api/internal/application/usecase"
	"github.com/corbanhub/gestao-api/internal/infrastructure/pdf"
)

// EstrategiaHandler visões de estratégia comercial.
type EstrategiaHandler struct {
	uc        *usecase.EstrategiaUseCase
	relatorio *pdf.RelatorioProducaoGenerator
}

func NewEstrategiaHandler(uc *usecase.EstrategiaUseCase, relatorio *pdf.RelatorioProducaoGenerator) *EstrategiaHandler {
	return &EstrategiaHandler{uc: uc, relatorio: relatorio}
}

// Lojas godoc
// @Summary      Lojas do recorte, com busca opcional
// @Tags         estrategia
// @Produce      json
// @Param        q  query  string  false  "termo de busca (nome, PDV, CNPJ, chave)"
// @Success      200  {array}  dto.LojaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/estrategia/lojas [get]
func (h *EstrategiaHandler) Lojas(c *fiber.Ctx) error {
	lojas, err := h.uc.Lojas(c.Context(), GetUserID(c), c.Query("q"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(lojas)
}

// Produto godoc
// @Summary      Lojas com a janela mensal do produto
// @Tags         estrategia
// @Produce      json
// @Param        produto  path  string  true  "credito | abertura-conta | seguro | pontos-ativos | pontos-bloqueados"
// @Success      200  {array}  dto.LojaProducaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estrategia/{produto} [get]
func (h *EstrategiaHandler) Produto(c *fiber.Ctx) error {
	lojas, err := h.uc.LojasComProducao(c.Context(), GetUserID(c), c.Params("produto"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(lojas)
}

// Metricas godoc
// @Summary      Resumo agregado do produto
// @Tags         estrategia
// @Produce      json
// @Param        produto  path  string  true  "produto"
// @Success      200  {object}  dto.MetricasResponse
// @Router       /api/estrategia/{produto}/metricas [get]
func (h *EstrategiaHandler) Metricas(c *fiber.Ctx) error {
	metricas, err := h.uc.Metricas(c.Context(), GetUserID(c), c.Params("produto"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(metricas)
}

// Evolucao godoc
// @Summary      Análise de evolução: zeraram, novas, voltaram, estáveis
// @Tags         estrategia
// @Produce      json
// @Param        produto  path  string  true  "produto"
// @Success      200  {object}  dto.EvolucaoResponse
// @Router       /api/estrategia/{produto}/evolucao [get]
func (h *EstrategiaHandler) Evolucao(c *fiber.Ctx) error {
	evolucao, err := h.uc.Evolucao(c.Context(), GetUserID(c), c.Params("produto"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(evolucao)
}

// ExportEvolucao godoc
// @Summary      Exportar a análise de evolução em XLSX
// @Tags         estrategia
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        produto  path  string  true  "produto"
// @Success      200  {file}  binary
// @Router       /api/estrategia/{produto}/evolucao/export [get]
func (h *EstrategiaHandler) ExportEvolucao(c *fiber.Ctx) error {
	produto := c.Params("produto")
	evolucao, err := h.uc.Evolucao(c.Context(), GetUserID(c), produto)
	if err != nil {
		return responderErro(c, err)
	}
	planilha, err := export.EvolucaoXLSX(produto, evolucao)
	if err != nil {
		return responderErro(c, err)
	}

	nome := fmt.Sprintf("analise-evolucao-%s-%s.xlsx", produto, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(planilha)
}

// Relatorio godoc
// @Summary      Relatório de produção em PDF
// @Tags         estrategia
// @Produce      application/pdf
// @Param        produto  path  string  true  "produto"
// @Success      200  {file}  binary
// @Router       /api/estrategia/{produto}/relatorio [get]
func (h *EstrategiaHandler) Relatorio(c *fiber.Ctx) error {
	produto := c.Params("produto")
	usuarioID := GetUserID(c)

	metricas, err := h.uc.Metricas(c.Context(), usuarioID, produto)
	if err != nil {
		return responderErro(c, err)
	}
	lojas, err := h.uc.LojasComProducao(c.Context(), usuarioID, produto)
	if err != nil {
		return responderErro(c, err)
	}
	doc, err := h.relatorio.Gerar(c.Context(), produto, metricas, lojas)
	if err != nil {
		return responderErro(c, err)
	}

	nome := fmt.Sprintf("relatorio-producao-%s-%s.pdf", produto, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(doc)
}
