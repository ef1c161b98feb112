package domain

import "fmt"

// Product struct - Sellable catalog item
type Product struct {
	ID          uint   `gorm:"primaryKey" yaml:"-"`
	Position    int    `gorm:"not null;default:0;index" yaml:"-"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex" yaml:"name"`
	Description string `gorm:"type:TEXT" yaml:"description"`
}

// TableName func
func (p *Product) TableName() string {
	return "products"
}

// Catalog is the ordered, read-only list of products loaded at startup
type Catalog struct {
	products []Product
}

// NewCatalog validates the loaded products and freezes their order.
// An empty catalog or a repeated product name is a configuration error.
func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(products))
	frozen := make([]Product, len(products))
	for i, p := range products {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Name)
		}
		seen[p.Name] = struct{}{}
		frozen[i] = p
	}

	return &Catalog{products: frozen}, nil
}

// Len returns the number of products
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// At returns the product at index i
func (c *Catalog) At(i int) Product {
	return c.products[i]
}

// Products returns a copy of the products in catalog order
func (c *Catalog) Products() []Product {
	if c == nil {
		return []Product{}
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductImage maps a product name to the public image URL shown on its card
type ProductImage struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url" yaml:"url"`
}

// ProductImages is the immutable name -> image URL lookup table
type ProductImages map[string]string

// NewProductImages builds the lookup table from configured entries
func NewProductImages(entries []ProductImage) ProductImages {
	images := make(ProductImages, len(entries))
	for _, e := range entries {
		images[e.Name] = e.URL
	}
	return images
}

// Lookup returns the image URL for a product name
func (p ProductImages) Lookup(name string) (string, bool) {
	url, ok := p[name]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}
