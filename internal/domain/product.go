package domain

// BusinessModel is the selling model the product would be launched under
type BusinessModel string

const (
	BusinessDropshipping BusinessModel = "Dropshipping"
	BusinessAmazonFBA    BusinessModel = "Amazon FBA"
	BusinessTikTokShop   BusinessModel = "TikTok Shop"
	BusinessPrivateLabel BusinessModel = "Private Label"
	BusinessWholesaleB2B BusinessModel = "Wholesale/B2B"
)

// Platform is the sales channel the product would be launched on
type Platform string

const (
	PlatformShopify     Platform = "Shopify"
	PlatformAmazon      Platform = "Amazon"
	PlatformTikTokShop  Platform = "TikTok Shop"
	PlatformEtsy        Platform = "Etsy"
	PlatformWooCommerce Platform = "WooCommerce"
	PlatformNativeAds   Platform = "Native Ads (Taboola/Outbrain)"
)

// ProductInput holds the product attributes fed into the analysis engine.
// Built fresh per request, either from manual entry or from a catalog product.
type ProductInput struct {
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	Cost          float64       `json:"cost"`
	BusinessModel BusinessModel `json:"businessModel"`
	Platform      Platform      `json:"platform"`
}

// BusinessModels lists the supported business models in display order
func BusinessModels() []BusinessModel {
	return []BusinessModel{
		BusinessDropshipping,
		BusinessAmazonFBA,
		BusinessTikTokShop,
		BusinessPrivateLabel,
		BusinessWholesaleB2B,
	}
}

// Platforms lists the supported platforms in display order
func Platforms() []Platform {
	return []Platform{
		PlatformShopify,
		PlatformAmazon,
		PlatformTikTokShop,
		PlatformEtsy,
		PlatformWooCommerce,
		PlatformNativeAds,
	}
}

// ValidBusinessModel reports whether m is a supported business model
func ValidBusinessModel(m BusinessModel) bool {
	for _, known := range BusinessModels() {
		if m == known {
			return true
		}
	}
	return false
}

// ValidPlatform reports whether p is a supported platform
func ValidPlatform(p Platform) bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}
