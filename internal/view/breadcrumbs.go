package view

import (
	"redlenic/storefront/internal/catalog"
	"redlenic/storefront/internal/domain"
	"redlenic/storefront/internal/router"
)

func homeCrumb() Crumb {
	return Crumb{Label: "Inicio", Href: "/"}
}

func catalogCrumbs() []Crumb {
	return []Crumb{homeCrumb(), {Label: "Catálogo"}}
}

// categoryCrumbs: Inicio > Catálogo > Category > Sub > Nested.
// The category and subcategory stay links; only a nested node is plain text.
// An unknown category leaves the trail empty.
func categoryCrumbs(f catalog.Filter) []Crumb {
	if !f.Found {
		return nil
	}

	crumbs := []Crumb{
		homeCrumb(),
		{Label: "Catálogo", Href: router.Href(domain.Route{Page: domain.PageCatalog})},
		{Label: f.Category.Name, Href: router.Href(router.Category(f.Category.ID))},
	}
	if f.Sub == nil {
		return crumbs
	}

	crumbs = append(crumbs, Crumb{Label: f.Sub.Name, Href: router.Href(router.Category(f.Category.ID, f.Sub.ID))})
	if f.Nested != nil {
		crumbs = append(crumbs, Crumb{Label: f.Nested.Name})
	}
	return crumbs
}

// productCrumbs walks from the category down to the product's leaf
func productCrumbs(c *catalog.Catalog, productID int) []Crumb {
	p, ok := c.Product(productID)
	if !ok {
		return nil
	}
	cat, ok := c.Category(p.CategoryID)
	if !ok {
		return nil
	}

	crumbs := []Crumb{
		homeCrumb(),
		{Label: "Catálogo", Href: router.Href(domain.Route{Page: domain.PageCatalog})},
		{Label: cat.Name, Href: router.Href(router.Category(cat.ID))},
	}

	for _, sub := range cat.Subcategories {
		if sub.ID == p.SubcategoryID {
			crumbs = append(crumbs, Crumb{Label: sub.Name, Href: router.Href(router.Category(cat.ID, sub.ID))})
			break
		}
		if leaf, ok := sub.Child(p.SubcategoryID); ok {
			crumbs = append(crumbs,
				Crumb{Label: sub.Name, Href: router.Href(router.Category(cat.ID, sub.ID))},
				Crumb{Label: leaf.Name, Href: router.Href(router.Category(cat.ID, sub.ID, leaf.ID))},
			)
			break
		}
	}

	return append(crumbs, Crumb{Label: p.Name})
}
