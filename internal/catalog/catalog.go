package catalog

import "redlenic/storefront/internal/domain"

// Catalog is the read-only category tree and product list built at startup
type Catalog struct {
	categories []domain.Category
	products   []domain.Product
	byID       map[int]int
}

func New(categories []domain.Category, products []domain.Product) *Catalog {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{
		categories: categories,
		products:   products,
		byID:       byID,
	}
}

func (c *Catalog) Categories() []domain.Category {
	return c.categories
}

func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Product resolves a product id
func (c *Catalog) Product(id int) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Category resolves a top-level category id
func (c *Catalog) Category(id string) (*domain.Category, bool) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			return &c.categories[i], true
		}
	}
	return nil, false
}

// Featured returns up to limit featured products in generation order; limit <= 0 means all
func (c *Catalog) Featured(limit int) []domain.Product {
	return c.filter(limit, func(p domain.Product) bool { return p.Featured })
}

// InCategory returns up to limit products of a category; limit <= 0 means all
func (c *Catalog) InCategory(categoryID string, limit int) []domain.Product {
	return c.filter(limit, func(p domain.Product) bool { return p.CategoryID == categoryID })
}

func (c *Catalog) filter(limit int, keep func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0)
	for _, p := range c.products {
		if limit > 0 && len(result) >= limit {
			break
		}
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
