package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/evaly/backend/internal/domain"
)

// Client handles communication with the Shopify Admin REST API for one shop.
// It is read-only: product and shop lookups, nothing else.
type Client struct {
	httpClient  *http.Client
	shopDomain  string
	baseURL     string
	accessToken string
	apiVersion  string
	rateLimiter *rate.Limiter
	log         *logrus.Logger
}

// Shopify's REST bucket leaks 2 requests per second for standard plans.
// Clients are request-scoped, so the limiters live at package level keyed by
// shop domain; concurrent requests to the same shop share one bucket.
var (
	limiterMu sync.Mutex
	limiters  = make(map[string]*rate.Limiter)
)

func limiterFor(shopDomain string) *rate.Limiter {
	limiterMu.Lock()
	defer limiterMu.Unlock()

	if l, ok := limiters[shopDomain]; ok {
		return l
	}
	l := rate.NewLimiter(rate.Limit(2), 4)
	limiters[shopDomain] = l
	return l
}

// NewClient creates a Shopify Admin API client. The shop identifier may be a
// bare shop name, a full myshopify domain, or a URL with scheme; it is
// normalized before use.
func NewClient(shopIdentifier, accessToken, apiVersion, domainSuffix string, log *logrus.Logger) *Client {
	shopDomain := NormalizeShopDomain(shopIdentifier, domainSuffix)
	limiter := limiterFor(shopDomain)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		shopDomain:  shopDomain,
		baseURL:     "https://" + shopDomain,
		accessToken: accessToken,
		apiVersion:  apiVersion,
		rateLimiter: limiter,
		log:         log,
	}
}

// NormalizeShopDomain strips any URL scheme and path from the identifier and
// appends the canonical storefront suffix when given a bare shop name.
// "mystore" and "https://mystore.myshopify.com" both normalize to
// "mystore.myshopify.com".
func NormalizeShopDomain(identifier, suffix string) string {
	d := strings.TrimSpace(identifier)
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if idx := strings.Index(d, "/"); idx >= 0 {
		d = d[:idx]
	}
	if d != "" && !strings.Contains(d, ".") {
		d = d + suffix
	}
	return d
}

// ShopDomain returns the normalized shop domain this client talks to
func (c *Client) ShopDomain() string {
	return c.shopDomain
}

// doGet executes a rate-limited GET against the Admin API and maps failure
// statuses to the catalog error taxonomy
func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/admin/api/%s/%s", c.baseURL, c.apiVersion, path)
	if len(params) > 0 {
		reqURL = reqURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("shop", c.shopDomain).Warn("shopify request failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrCatalogConnection, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
	case resp.StatusCode != http.StatusOK:
		c.log.WithFields(logrus.Fields{
			"shop":   c.shopDomain,
			"status": resp.StatusCode,
		}).Warn("shopify API error")
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogConnection, resp.StatusCode, string(body))
	}

	return body, nil
}

// GetShop fetches basic shop metadata. Used both for display and as the
// connection check: a succeeding GetShop means the credentials work.
func (c *Client) GetShop(ctx context.Context) (*domain.ShopInfo, error) {
	body, err := c.doGet(ctx, "shop.json", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Shop Shop `json:"shop"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding shop: %v", domain.ErrCatalogConnection, err)
	}

	info := MapShopInfo(&envelope.Shop)
	return &info, nil
}

// ListProducts fetches up to limit products from the shop
func (c *Client) ListProducts(ctx context.Context, limit int) ([]domain.CatalogProduct, error) {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))

	body, err := c.doGet(ctx, "products.json", params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding products: %v", domain.ErrCatalogConnection, err)
	}

	products := make([]domain.CatalogProduct, 0, len(envelope.Products))
	for i := range envelope.Products {
		products = append(products, MapProduct(&envelope.Products[i], c.shopDomain))
	}

	c.log.WithFields(logrus.Fields{
		"shop":  c.shopDomain,
		"count": len(products),
	}).Debug("listed products")

	return products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.CatalogProduct, error) {
	body, err := c.doGet(ctx, fmt.Sprintf("products/%d.json", id), nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Product Product `json:"product"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding product: %v", domain.ErrCatalogConnection, err)
	}

	product := MapProduct(&envelope.Product, c.shopDomain)
	return &product, nil
}

// SearchProducts fetches products whose title matches the query
func (c *Client) SearchProducts(ctx context.Context, title string, limit int) ([]domain.CatalogProduct, error) {
	params := url.Values{}
	params.Add("title", title)
	params.Add("limit", strconv.Itoa(limit))

	body, err := c.doGet(ctx, "products.json", params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Products []Product `json:"products"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding products: %v", domain.ErrCatalogConnection, err)
	}

	products := make([]domain.CatalogProduct, 0, len(envelope.Products))
	for i := range envelope.Products {
		products = append(products, MapProduct(&envelope.Products[i], c.shopDomain))
	}

	return products, nil
}
