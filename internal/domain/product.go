package domain

type Product struct {
	ID              int    `json:"id"`
	CategoryID      string `json:"categoryId"`
	SubcategoryID   string `json:"subcategoryId"`   // Leaf subcategory, used for filtering
	SubcategoryName string `json:"subcategoryName"` // Display name of the leaf
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int    `json:"price"` // Whole pesos, no minor unit
	Image           string `json:"image"`
	Featured        bool   `json:"featured"`
}
