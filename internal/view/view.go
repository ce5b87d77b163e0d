// Package view builds typed page models from catalog, cart and route, and renders them as HTML.
package view

import (
	"strconv"

	"redlenic/storefront/internal/catalog"
	"redlenic/storefront/internal/domain"
	"redlenic/storefront/internal/router"
)

// Settings are the store-level values every page needs
type Settings struct {
	StoreName       string
	ContactURL      string
	CheckoutURL     string
	HomeFeatured    int // Featured products on the home page
	CategoryPreview int // Products per category on the catalog page
}

// Input is everything a page is derived from
type Input struct {
	Catalog  *catalog.Catalog
	Cart     []domain.CartEntry
	Route    domain.Route
	Settings Settings
}

type Page struct {
	Route       domain.Route
	Path        string
	Title       string
	StoreName   string
	ShowHero    bool
	Breadcrumbs []Crumb
	Menu        []Link

	Home     *Home
	Catalog  []CatalogGroup
	Category *Category
	Product  *Product

	Cart        Cart
	ContactURL  string
	CheckoutURL string
}

// Crumb with an empty Href is the current location
type Crumb struct {
	Label string
	Href  string
}

type Link struct {
	Label string
	Href  string
	Icon  string
}

type ProductCard struct {
	ID              int
	Name            string
	SubcategoryName string
	Image           string
	Price           string
	Href            string
	ReturnTo        string
}

type Home struct {
	Categories []Link
	Featured   []ProductCard
}

type CatalogGroup struct {
	Category Link
	Products []ProductCard
}

type Chip struct {
	Label    string
	Href     string
	Selected bool
}

type Category struct {
	Found    bool
	Icon     string
	Heading  string
	BackHref string // Empty when no back affordance is shown
	Chips    []Chip
	Products []ProductCard
}

type Product struct {
	Found       bool
	Card        ProductCard
	Path        string // "Hogar > Cocina"
	Description string
}

type Cart struct {
	Count    int
	Total    string
	Empty    bool
	Items    []CartItem
	ReturnTo string
}

type CartItem struct {
	ID       int
	Name     string
	Image    string
	Price    string
	Quantity int
}

// Build derives the page model for a route. It is a pure function of its input.
func Build(in Input) Page {
	path := router.Href(in.Route)

	page := Page{
		Route:       in.Route,
		Path:        path,
		Title:       in.Settings.StoreName,
		StoreName:   in.Settings.StoreName,
		Menu:        categoryLinks(in.Catalog),
		Cart:        buildCart(in.Cart, path),
		ContactURL:  in.Settings.ContactURL,
		CheckoutURL: in.Settings.CheckoutURL,
	}

	switch in.Route.Page {
	case domain.PageHome:
		page.ShowHero = true
		page.Home = &Home{
			Categories: page.Menu,
			Featured:   cards(in.Catalog.Featured(in.Settings.HomeFeatured), path),
		}

	case domain.PageCatalog:
		page.Title = "Catálogo Completo - " + in.Settings.StoreName
		page.Breadcrumbs = catalogCrumbs()
		page.Catalog = buildCatalog(in.Catalog, in.Settings.CategoryPreview, path)

	case domain.PageCategory:
		f := in.Catalog.Filter(in.Route.Param(0), in.Route.Param(1), in.Route.Param(2))
		page.Category = buildCategory(f, path)
		page.Breadcrumbs = categoryCrumbs(f)
		if f.Found {
			page.Title = page.Category.Heading + " - " + in.Settings.StoreName
		}

	case domain.PageProduct:
		page.Product = buildProduct(in.Catalog, in.Route.Param(0), path)
		if page.Product.Found {
			page.Title = page.Product.Card.Name + " - " + in.Settings.StoreName
			page.Breadcrumbs = productCrumbs(in.Catalog, page.Product.Card.ID)
		}
	}

	return page
}

func categoryLinks(c *catalog.Catalog) []Link {
	links := make([]Link, 0, len(c.Categories()))
	for _, cat := range c.Categories() {
		links = append(links, Link{
			Label: cat.Name,
			Href:  router.Href(router.Category(cat.ID)),
			Icon:  cat.Icon,
		})
	}
	return links
}

func card(p domain.Product, returnTo string) ProductCard {
	return ProductCard{
		ID:              p.ID,
		Name:            p.Name,
		SubcategoryName: p.SubcategoryName,
		Image:           p.Image,
		Price:           domain.FormatPrice(p.Price),
		Href:            productHref(p.ID),
		ReturnTo:        returnTo,
	}
}

func cards(products []domain.Product, returnTo string) []ProductCard {
	result := make([]ProductCard, 0, len(products))
	for _, p := range products {
		result = append(result, card(p, returnTo))
	}
	return result
}

func productHref(id int) string {
	return router.Href(domain.Route{Page: domain.PageProduct, Params: []string{strconv.Itoa(id)}})
}

func buildCatalog(c *catalog.Catalog, preview int, returnTo string) []CatalogGroup {
	groups := make([]CatalogGroup, 0, len(c.Categories()))
	for _, cat := range c.Categories() {
		groups = append(groups, CatalogGroup{
			Category: Link{Label: cat.Name, Href: router.Href(router.Category(cat.ID)), Icon: cat.Icon},
			Products: cards(c.InCategory(cat.ID, preview), returnTo),
		})
	}
	return groups
}

func buildCategory(f catalog.Filter, returnTo string) *Category {
	if !f.Found {
		return &Category{}
	}

	heading := f.Category.Name
	if f.Sub != nil {
		heading += " > " + f.Sub.Name
	}
	if f.Nested != nil {
		heading += " > " + f.Nested.Name
	}

	result := &Category{
		Found:    true,
		Icon:     f.Category.Icon,
		Heading:  heading,
		Chips:    make([]Chip, 0, len(f.Chips)),
		Products: cards(f.Products, returnTo),
	}
	if f.Back != nil {
		result.BackHref = router.Href(*f.Back)
	}
	for _, chip := range f.Chips {
		result.Chips = append(result.Chips, Chip{
			Label:    chip.Name,
			Href:     router.Href(chip.Target),
			Selected: chip.Selected,
		})
	}
	return result
}

func buildProduct(c *catalog.Catalog, rawID, returnTo string) *Product {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return &Product{}
	}
	p, ok := c.Product(id)
	if !ok {
		return &Product{}
	}

	path := p.SubcategoryName
	if cat, ok := c.Category(p.CategoryID); ok {
		path = cat.Name + " > " + p.SubcategoryName
	}

	return &Product{
		Found:       true,
		Card:        card(p, returnTo),
		Path:        path,
		Description: p.Description,
	}
}

func buildCart(entries []domain.CartEntry, returnTo string) Cart {
	cart := Cart{
		Empty:    len(entries) == 0,
		Items:    make([]CartItem, 0, len(entries)),
		ReturnTo: returnTo,
	}

	total := 0
	for _, e := range entries {
		cart.Count += e.Quantity
		total += e.LineTotal()
		cart.Items = append(cart.Items, CartItem{
			ID:       e.ID,
			Name:     e.Name,
			Image:    e.Image,
			Price:    domain.FormatPrice(e.Price),
			Quantity: e.Quantity,
		})
	}
	cart.Total = domain.FormatPrice(total)

	return cart
}
