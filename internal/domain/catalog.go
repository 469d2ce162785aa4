package domain

// CatalogProduct is a read-only projection of a storefront product record.
// Pricing, SKU and inventory come from the first variant; a product with no
// variants carries zero values for all three.
type CatalogProduct struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	CompareAtPrice    *float64 `json:"compareAtPrice,omitempty"`
	SKU               string   `json:"sku"`
	InventoryQuantity int      `json:"inventoryQuantity"`
	ProductType       string   `json:"productType"`
	Vendor            string   `json:"vendor"`
	Tags              string   `json:"tags"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"createdAt"`
	ImageURL          *string  `json:"imageUrl,omitempty"`
	VariantsCount     int      `json:"variantsCount"`
	Handle            string   `json:"handle"`
	URL               string   `json:"url"`
}

// ShopInfo is the basic storefront metadata returned on connect
type ShopInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Domain   string `json:"domain"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
	PlanName string `json:"planName"`
}

// ToProductInput seeds an analysis input from a catalog product. Cost is not
// available from the storefront API, so the caller supplies it (landed cost
// is seller knowledge, not catalog data).
func (p *CatalogProduct) ToProductInput(cost float64, model BusinessModel, platform Platform) ProductInput {
	return ProductInput{
		Name:          p.Name,
		Price:         p.Price,
		Cost:          cost,
		BusinessModel: model,
		Platform:      platform,
	}
}
