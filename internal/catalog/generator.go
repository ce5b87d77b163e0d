package catalog

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"redlenic/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Options controls product synthesis
type Options struct {
	Seed             int64 // 0 seeds from the clock
	ProductsPerLeaf  int
	FeaturedPerLeaf  int
	MinPrice         int
	PriceSpan        int
	PlaceholderImage string
}

// DefaultOptions mirrors the storefront defaults
func DefaultOptions() Options {
	return Options{
		ProductsPerLeaf:  10,
		FeaturedPerLeaf:  2,
		MinPrice:         50000,
		PriceSpan:        500000,
		PlaceholderImage: "https://placehold.co/300x300/e2e8f0/1e40af?text=Producto",
	}
}

// Leaf is a subcategory that products attach to, with its owning category
type Leaf struct {
	CategoryID string
	ID         string
	Name       string
}

// Leaves walks the tree and returns every leaf in tree order.
// Children of a group are leaves; the group itself is not.
func Leaves(categories []domain.Category) []Leaf {
	var leaves []Leaf
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			if sub.IsGroup() {
				for _, nested := range sub.Subcategories {
					leaves = append(leaves, Leaf{CategoryID: cat.ID, ID: nested.ID, Name: nested.Name})
				}
				continue
			}
			leaves = append(leaves, Leaf{CategoryID: cat.ID, ID: sub.ID, Name: sub.Name})
		}
	}
	return leaves
}

type generator struct {
	opts   Options
	rng    *rand.Rand
	lower  cases.Caser
	nextID int
}

// Generate builds the catalog from the default tree
func Generate(opts Options) *Catalog {
	return GenerateFrom(DefaultTree(), opts)
}

// GenerateFrom synthesizes products for every leaf of the given tree
func GenerateFrom(categories []domain.Category, opts Options) *Catalog {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &generator{
		opts:   opts,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)^0x9e3779b97f4a7c15)),
		lower:  cases.Lower(language.Spanish),
		nextID: 1,
	}

	products := make([]domain.Product, 0)
	for _, leaf := range Leaves(categories) {
		products = append(products, g.createProducts(leaf)...)
	}

	log.Infof("✅ Generated %d products for %d categories", len(products), len(categories))

	return New(categories, products)
}

func (g *generator) createProducts(leaf Leaf) []domain.Product {
	products := make([]domain.Product, 0, g.opts.ProductsPerLeaf)
	for i := 1; i <= g.opts.ProductsPerLeaf; i++ {
		products = append(products, domain.Product{
			ID:              g.nextID,
			CategoryID:      leaf.CategoryID,
			SubcategoryID:   leaf.ID,
			SubcategoryName: leaf.Name,
			Name:            fmt.Sprintf("%s %c-%d", leaf.Name, rune('A'+i), g.rng.IntN(1000)),
			Description: fmt.Sprintf(
				"Increíble %s con tecnología de punta, bajo consumo y diseño elegante. Ideal para vos.",
				g.lower.String(leaf.Name)),
			Price:    g.price(),
			Image:    g.opts.PlaceholderImage,
			Featured: i <= g.opts.FeaturedPerLeaf,
		})
		g.nextID++
	}
	return products
}

func (g *generator) price() int {
	if g.opts.PriceSpan <= 0 {
		return g.opts.MinPrice
	}
	return g.opts.MinPrice + g.rng.IntN(g.opts.PriceSpan)
}
