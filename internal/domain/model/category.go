package model

// CategoryParent is the parent reference populated on category reads.
type CategoryParent struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Category mirrors the upstream category document.
type Category struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description,omitempty"`
	Image         string          `json:"image,omitempty"`
	Parent        *CategoryParent `json:"parent,omitempty"`
	Status        string          `json:"status"`
	ProductsCount int             `json:"productsCount,omitempty"`
	SortOrder     int             `json:"sortOrder,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`

	// Children is populated only by the tree endpoint.
	Children []Category `json:"children,omitempty"`
}
