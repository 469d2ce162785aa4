package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/evaly/backend/config"
	"github.com/evaly/backend/internal/domain"
	"github.com/evaly/backend/internal/infrastructure/provider"
	"github.com/evaly/backend/internal/infrastructure/shopify"
	"github.com/evaly/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis *usecase.AnalysisService
	catalog  *usecase.CatalogService
	shopify  config.ShopifyConfig
	log      *logrus.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	analysis *usecase.AnalysisService,
	catalog *usecase.CatalogService,
	shopifyCfg config.ShopifyConfig,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		analysis: analysis,
		catalog:  catalog,
		shopify:  shopifyCfg,
		log:      log,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "evaly-backend",
		"version": "1.0.0",
	})
}

// AnalysisRequest is the body of POST /api/v1/analysis
type AnalysisRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	BusinessModel string  `json:"businessModel" binding:"required"`
	Platform      string  `json:"platform" binding:"required"`
	Provider      string  `json:"provider"`
	APIKey        string  `json:"apiKey" binding:"required"`
}

// AnalysisResponse wraps the result with the provider actually used and the
// display color band for the verdict
type AnalysisResponse struct {
	Result    *domain.AnalysisResult `json:"result"`
	Provider  string                 `json:"provider"`
	ColorBand string                 `json:"colorBand"`
}

// Analyze runs the 9-point product analysis
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product := domain.ProductInput{
		Name:          req.Name,
		Price:         req.Price,
		Cost:          req.Cost,
		BusinessModel: domain.BusinessModel(req.BusinessModel),
		Platform:      domain.Platform(req.Platform),
	}

	result, usedProvider, err := h.analysis.Evaluate(c.Request.Context(), product, provider.ID(req.Provider), req.APIKey)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		Result:    result,
		Provider:  string(usedProvider),
		ColorBand: result.Verdict.ColorBand(),
	})
}

// catalogClient builds a request-scoped Shopify client from the credential
// headers. Catalog state never outlives a request.
func (h *Handler) catalogClient(c *gin.Context) (domain.CatalogClient, string, bool) {
	shop := c.GetHeader("X-Shop-Domain")
	token := c.GetHeader("X-Shopify-Access-Token")
	if shop == "" || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Shop-Domain and X-Shopify-Access-Token headers are required"})
		return nil, "", false
	}

	client := shopify.NewClient(shop, token, h.shopify.APIVersion, h.shopify.DomainSuffix, h.log)
	return client, client.ShopDomain(), true
}

// ConnectCatalog validates the shop credentials and returns shop info
func (h *Handler) ConnectCatalog(c *gin.Context) {
	client, shopDomain, ok := h.catalogClient(c)
	if !ok {
		return
	}

	info, err := h.catalog.Connect(c.Request.Context(), client)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":  true,
		"shopDomain": shopDomain,
		"shop":       info,
	})
}

// ListCatalogProducts lists products from the connected shop
func (h *Handler) ListCatalogProducts(c *gin.Context) {
	client, shopDomain, ok := h.catalogClient(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	products, err := h.catalog.ListProducts(c.Request.Context(), client, shopDomain, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetCatalogProduct fetches a single product by id
func (h *Handler) GetCatalogProduct(c *gin.Context) {
	client, shopDomain, ok := h.catalogClient(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), client, shopDomain, id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// SearchCatalogProducts searches products by title
func (h *Handler) SearchCatalogProducts(c *gin.Context) {
	client, _, ok := h.catalogClient(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, err := h.catalog.SearchProducts(c.Request.Context(), client, query, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GetCatalogShop returns shop metadata
func (h *Handler) GetCatalogShop(c *gin.Context) {
	client, shopDomain, ok := h.catalogClient(c)
	if !ok {
		return
	}

	info, err := h.catalog.GetShop(c.Request.Context(), client, shopDomain)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shop": info})
}

// renderError maps domain errors to HTTP statuses. The message is surfaced
// verbatim; the client decides how to present it.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingCredential), errors.Is(err, domain.ErrCatalogAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrCatalogNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSchemaValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrCatalogConnection):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
