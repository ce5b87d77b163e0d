package catalog

import (
	"slices"

	"redlenic/storefront/internal/domain"
	"redlenic/storefront/internal/router"
)

// Chip is a lateral or drill-down navigation affordance
type Chip struct {
	ID       string
	Name     string
	Target   domain.Route
	Selected bool
}

// Filter is the product scope and navigation derived for a category page
type Filter struct {
	Found    bool
	Category *domain.Category
	Sub      *domain.Subcategory // nil when no subcategory is selected or it did not resolve
	Nested   *domain.Subcategory // nil unless Sub is a group and the nested id resolved
	Products []domain.Product
	Chips    []Chip
	Back     *domain.Route // nil when no back affordance is shown
}

// Filter derives scope, chips and back link for categoria/{categoryID}/{subID}/{nestedID}.
// An unknown category yields Found=false with an empty scope.
func (c *Catalog) Filter(categoryID, subID, nestedID string) Filter {
	category, ok := c.Category(categoryID)
	if !ok {
		return Filter{Products: []domain.Product{}}
	}

	f := Filter{Found: true, Category: category, Products: []domain.Product{}}

	if subID == "" {
		f.Products = c.InCategory(categoryID, 0)
		f.Chips = chips(category.Subcategories, "", func(id string) domain.Route {
			return router.Category(categoryID, id)
		})
		return f
	}

	sub, ok := category.Subcategory(subID)
	if !ok {
		back := router.Category(categoryID)
		f.Back = &back
		return f
	}
	f.Sub = sub

	if !sub.IsGroup() {
		f.Products = c.inLeaves(categoryID, subID)
		f.Chips = chips(category.Subcategories, subID, func(id string) domain.Route {
			return router.Category(categoryID, id)
		})
		back := router.Category(categoryID)
		f.Back = &back
		return f
	}

	toNested := func(id string) domain.Route {
		return router.Category(categoryID, subID, id)
	}

	if nestedID == "" {
		f.Products = c.inLeaves(categoryID, sub.ChildIDs()...)
		f.Chips = chips(sub.Subcategories, "", toNested)
		return f
	}

	if nested, ok := sub.Child(nestedID); ok {
		f.Nested = nested
	}
	f.Products = c.inLeaves(categoryID, nestedID)
	f.Chips = chips(sub.Subcategories, nestedID, toNested)
	back := router.Category(categoryID, subID)
	f.Back = &back
	return f
}

func (c *Catalog) inLeaves(categoryID string, leafIDs ...string) []domain.Product {
	return c.filter(0, func(p domain.Product) bool {
		return p.CategoryID == categoryID && slices.Contains(leafIDs, p.SubcategoryID)
	})
}

func chips(subs []domain.Subcategory, selectedID string, target func(id string) domain.Route) []Chip {
	result := make([]Chip, 0, len(subs))
	for _, sub := range subs {
		result = append(result, Chip{
			ID:       sub.ID,
			Name:     sub.Name,
			Target:   target(sub.ID),
			Selected: selectedID != "" && sub.ID == selectedID,
		})
	}
	return result
}
