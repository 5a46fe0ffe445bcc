package model

// ProductStatus values accepted by the upstream API.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"
)

// ProductImage is one image attached to a product.
type ProductImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

// ProductCategory is the category reference populated on admin product reads.
type ProductCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// CreatedBy identifies the sub-user who created a record.
type CreatedBy struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product mirrors the upstream product document. Timestamps stay as strings;
// this service never interprets them, it only relays them to the UI.
type Product struct {
	ID                string          `json:"_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             float64         `json:"price"`
	CompareAtPrice    float64         `json:"compareAtPrice,omitempty"`
	SKU               string          `json:"sku"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold,omitempty"`
	Category          ProductCategory `json:"category"`
	Images            []ProductImage  `json:"images"`
	Status            string          `json:"status"`
	Featured          bool            `json:"featured"`
	Tags              []string        `json:"tags,omitempty"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	UpdatedAt         string          `json:"updatedAt,omitempty"`
	CreatedBy         *CreatedBy      `json:"createdBy,omitempty"`
}

// LowStock reports whether the product is at or below its low-stock threshold.
// A zero threshold means the upstream default of 5.
func (p Product) LowStock() bool {
	threshold := p.LowStockThreshold
	if threshold == 0 {
		threshold = 5
	}
	return p.Stock <= threshold
}
