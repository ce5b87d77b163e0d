package view

import (
	"bytes"
	"strconv"
	"testing"

	"redlenic/storefront/internal/catalog"
	"redlenic/storefront/internal/domain"
	"redlenic/storefront/internal/router"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	opts := catalog.DefaultOptions()
	opts.Seed = 1
	return catalog.Generate(opts)
}

func testSettings() Settings {
	return Settings{
		StoreName:       "Red Lenic",
		ContactURL:      "https://wa.me/5491136574678?text=Hola",
		CheckoutURL:     "/checkout",
		HomeFeatured:    8,
		CategoryPreview: 3,
	}
}

func build(c *catalog.Catalog, fragment string, cart []domain.CartEntry) Page {
	return Build(Input{
		Catalog:  c,
		Cart:     cart,
		Route:    router.Resolve(fragment),
		Settings: testSettings(),
	})
}

func render(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func crumbLabels(page Page) []string {
	labels := make([]string, 0, len(page.Breadcrumbs))
	for _, c := range page.Breadcrumbs {
		labels = append(labels, c.Label)
	}
	return labels
}

func TestBuild_Home(t *testing.T) {
	c := testCatalog()
	page := build(c, "", nil)

	assert.True(t, page.ShowHero)
	assert.Empty(t, page.Breadcrumbs)
	require.NotNil(t, page.Home)
	assert.Len(t, page.Home.Categories, 3)
	assert.Len(t, page.Home.Featured, 8)
	assert.Equal(t, "/categoria/tecnologia", page.Home.Categories[0].Href)

	doc := render(t, page)
	assert.Equal(t, 1, doc.Find("#hero-section").Length())
	assert.Equal(t, 3, doc.Find(".category-tile").Length())
	assert.Equal(t, 8, doc.Find("#app-container .product-card").Length())
}

func TestBuild_Catalog(t *testing.T) {
	page := build(testCatalog(), "catalogo", nil)

	assert.False(t, page.ShowHero)
	assert.Equal(t, []string{"Inicio", "Catálogo"}, crumbLabels(page))
	require.Len(t, page.Catalog, 3)
	for _, group := range page.Catalog {
		assert.Len(t, group.Products, 3)
	}

	doc := render(t, page)
	assert.Equal(t, 0, doc.Find("#hero-section").Length())
	assert.Equal(t, 3, doc.Find(".catalog-group").Length())
	assert.Equal(t, "/categoria/hogar", doc.Find(".view-all").Eq(1).AttrOr("href", ""))
	assert.Equal(t, "Catálogo", doc.Find("#breadcrumbs span").Text())
}

func TestBuild_CategoryGroup(t *testing.T) {
	page := build(testCatalog(), "categoria/hogar/electrodomesticos", nil)

	require.NotNil(t, page.Category)
	assert.True(t, page.Category.Found)
	assert.Equal(t, "Hogar > Electrodomésticos", page.Category.Heading)
	assert.Empty(t, page.Category.BackHref)
	assert.Len(t, page.Category.Products, 40)
	assert.Equal(t, []string{"Inicio", "Catálogo", "Hogar", "Electrodomésticos"}, crumbLabels(page))

	doc := render(t, page)
	chips := doc.Find("#filters .chip")
	require.Equal(t, 4, chips.Length())
	assert.Equal(t, "Cocina", chips.First().Text())
	assert.Equal(t, "/categoria/hogar/electrodomesticos/cocina", chips.First().AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find("#filters .selected").Length())
	assert.Equal(t, 0, doc.Find("#filters .back").Length())
}

func TestBuild_CategoryNested(t *testing.T) {
	page := build(testCatalog(), "categoria/hogar/electrodomesticos/cocina", nil)

	assert.Equal(t, "Hogar > Electrodomésticos > Cocina", page.Category.Heading)
	assert.Equal(t, "/categoria/hogar/electrodomesticos", page.Category.BackHref)
	assert.Equal(t, []string{"Inicio", "Catálogo", "Hogar", "Electrodomésticos", "Cocina"}, crumbLabels(page))
	assert.Empty(t, page.Breadcrumbs[4].Href, "nested node is the current location")

	doc := render(t, page)
	assert.Equal(t, "Cocina", doc.Find("#filters .selected").Text())
	assert.Equal(t, "/categoria/hogar/electrodomesticos", doc.Find("#filters .back").AttrOr("href", ""))
	assert.Equal(t, 10, doc.Find("#app-container .product-card").Length())
}

func TestBuild_CategoryLeaf(t *testing.T) {
	page := build(testCatalog(), "categoria/tecnologia/smart-tvs", nil)

	assert.Equal(t, "/categoria/tecnologia", page.Category.BackHref)
	assert.Len(t, page.Category.Chips, 6)

	doc := render(t, page)
	assert.Equal(t, "Smart TVs", doc.Find("#filters .selected").Text())
	assert.Equal(t, "/categoria/tecnologia/celulares", doc.Find("#filters .chip").First().AttrOr("href", ""))
}

func TestBuild_CategoryNotFound(t *testing.T) {
	page := build(testCatalog(), "categoria/autos", nil)

	require.NotNil(t, page.Category)
	assert.False(t, page.Category.Found)
	assert.Empty(t, page.Breadcrumbs)

	doc := render(t, page)
	assert.Equal(t, "Categoría no encontrada.", doc.Find(".not-found").Text())
}

func TestBuild_CategoryEmptySection(t *testing.T) {
	page := build(testCatalog(), "categoria/hogar/electrodomesticos/heladeras", nil)

	doc := render(t, page)
	assert.Equal(t, "No hay productos en esta sección.", doc.Find(".empty").Text())
}

func TestBuild_Product(t *testing.T) {
	c := testCatalog()
	var target domain.Product
	for _, p := range c.Products() {
		if p.SubcategoryID == "lavarropas" {
			target = p
			break
		}
	}

	page := build(c, router.Href(domain.Route{Page: "producto", Params: []string{strconv.Itoa(target.ID)}}), nil)
	require.NotNil(t, page.Product)
	assert.True(t, page.Product.Found)
	assert.Equal(t, "Hogar > Lavarropas", page.Product.Path)
	assert.Equal(t,
		[]string{"Inicio", "Catálogo", "Hogar", "Electrodomésticos", "Lavarropas", target.Name},
		crumbLabels(page))

	doc := render(t, page)
	assert.Equal(t, target.Description, doc.Find(".product-detail .description").Text())
	assert.Equal(t, domain.FormatPrice(target.Price), doc.Find(".product-detail .price").Text())
}

func TestBuild_ProductNotFound(t *testing.T) {
	for _, fragment := range []string{"producto/abc", "producto/99999", "producto"} {
		page := build(testCatalog(), fragment, nil)
		require.NotNil(t, page.Product, fragment)
		assert.False(t, page.Product.Found, fragment)
	}
}

func TestBuild_UnknownPage(t *testing.T) {
	page := build(testCatalog(), "ofertas", nil)

	assert.False(t, page.ShowHero)
	assert.Empty(t, page.Breadcrumbs)
	assert.Nil(t, page.Home)
	assert.Nil(t, page.Catalog)
	assert.Nil(t, page.Category)
	assert.Nil(t, page.Product)

	doc := render(t, page)
	assert.Empty(t, doc.Find("#app-container").Children().Nodes)
}

func TestBuild_EmptyCart(t *testing.T) {
	doc := render(t, build(testCatalog(), "", nil))

	assert.Equal(t, "0", doc.Find("#cart-count").Text())
	assert.True(t, doc.Find("#cart-count").HasClass("scale-0"))
	assert.Equal(t, "$0", doc.Find("#cart-total").Text())
	_, disabled := doc.Find("#whatsapp-btn").Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, 1, doc.Find(".cart-empty").Length())
}

func TestBuild_CartContents(t *testing.T) {
	c := testCatalog()
	first, _ := c.Product(1)
	second, _ := c.Product(12)
	cart := []domain.CartEntry{
		{Product: first, Quantity: 2},
		{Product: second, Quantity: 1},
	}

	page := build(c, "categoria/tecnologia", cart)
	assert.Equal(t, 3, page.Cart.Count)
	assert.Equal(t, domain.FormatPrice(first.Price*2+second.Price), page.Cart.Total)

	doc := render(t, page)
	assert.Equal(t, "3", doc.Find("#cart-count").Text())
	items := doc.Find(".cart-item")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, first.Name, items.First().Find(".name").Text())
	assert.Equal(t, "2", items.First().Find(".quantity").Text())
	assert.Equal(t, "/checkout", doc.Find("#whatsapp-btn").AttrOr("href", ""))

	remove := items.First().Find(`form[data-action="remove"]`)
	assert.Equal(t, "/cart/1/remove", remove.AttrOr("action", ""))
	assert.Equal(t, "/categoria/tecnologia", remove.Find(`input[name="return"]`).AttrOr("value", ""))
}
