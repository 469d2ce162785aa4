package shopify

import (
	"fmt"
	"strconv"

	"github.com/evaly/backend/internal/domain"
)

// Product is a Shopify Admin API product record. Prices arrive as strings on
// the wire.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ProductType string    `json:"product_type"`
	Vendor      string    `json:"vendor"`
	Tags        string    `json:"tags"`
	Status      string    `json:"status"`
	CreatedAt   string    `json:"created_at"`
	Handle      string    `json:"handle"`
	Variants    []Variant `json:"variants"`
	Images      []Image   `json:"images"`
}

// Variant is a Shopify product variant
type Variant struct {
	ID                int64  `json:"id"`
	Price             string `json:"price"`
	CompareAtPrice    string `json:"compare_at_price"`
	SKU               string `json:"sku"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// Image is a Shopify product image
type Image struct {
	Src string `json:"src"`
}

// Shop is a Shopify Admin API shop record
type Shop struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Domain   string `json:"domain"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
	PlanName string `json:"plan_name"`
}

// MapProduct converts a Shopify product record to the domain CatalogProduct.
// The first variant supplies price, compare-at price, SKU and inventory; a
// product with no variants maps those to zero values. The first image is the
// representative image.
func MapProduct(p *Product, shopDomain string) domain.CatalogProduct {
	product := domain.CatalogProduct{
		ID:            p.ID,
		Name:          p.Title,
		ProductType:   p.ProductType,
		Vendor:        p.Vendor,
		Tags:          p.Tags,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		VariantsCount: len(p.Variants),
		Handle:        p.Handle,
		URL:           fmt.Sprintf("https://%s/products/%s", shopDomain, p.Handle),
	}

	if len(p.Variants) > 0 {
		v := p.Variants[0]
		product.Price = parsePrice(v.Price)
		product.SKU = v.SKU
		product.InventoryQuantity = v.InventoryQuantity
		if v.CompareAtPrice != "" {
			compareAt := parsePrice(v.CompareAtPrice)
			product.CompareAtPrice = &compareAt
		}
	}

	if len(p.Images) > 0 {
		src := p.Images[0].Src
		product.ImageURL = &src
	}

	return product
}

// MapShopInfo converts a Shopify shop record to the domain ShopInfo
func MapShopInfo(s *Shop) domain.ShopInfo {
	return domain.ShopInfo{
		Name:     s.Name,
		Email:    s.Email,
		Domain:   s.Domain,
		Currency: s.Currency,
		Timezone: s.Timezone,
		PlanName: s.PlanName,
	}
}

// parsePrice converts a Shopify price string to a float, defaulting to 0.0
// on malformed input
func parsePrice(s string) float64 {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return price
}
