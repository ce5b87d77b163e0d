package domain

const (
	PageHome     = "home"
	PageCatalog  = "catalogo"
	PageCategory = "categoria"
	PageProduct  = "producto"
)

// Route is the page descriptor derived from a location fragment
type Route struct {
	Page   string   `json:"page"`
	Params []string `json:"params"`
}

// Param returns the positional parameter at i, or "" when absent
func (r Route) Param(i int) string {
	if i < 0 || i >= len(r.Params) {
		return ""
	}
	return r.Params[i]
}
