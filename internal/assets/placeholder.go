package assets

import (
	_ "embed"
	"net/http"
)

//go:embed placeholder.svg
var placeholderSVG []byte

// PlaceholderHandler serves the bundled fallback product image
func PlaceholderHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(placeholderSVG)
	})
}
