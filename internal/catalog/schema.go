package catalog

import "redlenic/storefront/internal/domain"

// DefaultTree is the fixed storefront category tree
func DefaultTree() []domain.Category {
	return []domain.Category{
		{
			ID:   "tecnologia",
			Name: "Tecnología",
			Icon: "fa-mobile-screen",
			Subcategories: []domain.Subcategory{
				{ID: "celulares", Name: "Celulares"},
				{ID: "auriculares", Name: "Auriculares"},
				{ID: "parlantes", Name: "Parlantes"},
				{ID: "soportes", Name: "Soportes"},
				{ID: "camaras-seguridad", Name: "Cámaras y Seguridad"},
				{ID: "smart-tvs", Name: "Smart TVs"},
			},
		},
		{
			ID:   "hogar",
			Name: "Hogar",
			Icon: "fa-house",
			Subcategories: []domain.Subcategory{
				{ID: "blanqueria", Name: "Blanquería"},
				{ID: "bazar", Name: "Bazar"},
				{
					ID:   "electrodomesticos",
					Name: "Electrodomésticos",
					Subcategories: []domain.Subcategory{
						{ID: "cocina", Name: "Cocina"},
						{ID: "termotanques", Name: "Termotanques"},
						{ID: "microondas", Name: "Microondas"},
						{ID: "lavarropas", Name: "Lavarropas"},
					},
				},
			},
		},
		{
			ID:   "personal",
			Name: "Personal",
			Icon: "fa-user",
			Subcategories: []domain.Subcategory{
				{ID: "accesorios", Name: "Accesorios"},
				{ID: "indumentaria", Name: "Indumentaria"},
				{ID: "juguetes", Name: "Juguetes"},
				{ID: "belleza", Name: "Belleza"},
			},
		},
	}
}
