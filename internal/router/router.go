package router

import (
	"net/url"
	"strings"

	"redlenic/storefront/internal/domain"
)

// Resolve maps a location fragment to a route. A leading "#" or "/" is ignored,
// the first segment is the page ("home" when empty) and the rest are positional params.
// Params are not validated here.
func Resolve(fragment string) domain.Route {
	fragment = strings.TrimPrefix(fragment, "#")
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return domain.Route{Page: domain.PageHome, Params: []string{}}
	}

	parts := strings.Split(fragment, "/")
	for i, part := range parts {
		if unescaped, err := url.PathUnescape(part); err == nil {
			parts[i] = unescaped
		}
	}

	return domain.Route{
		Page:   parts[0],
		Params: parts[1:],
	}
}

// Href is the inverse of Resolve, producing the link path for a route
func Href(route domain.Route) string {
	if route.Page == "" || (route.Page == domain.PageHome && len(route.Params) == 0) {
		return "/"
	}

	var b strings.Builder
	b.WriteString("/")
	b.WriteString(url.PathEscape(route.Page))
	for _, param := range route.Params {
		b.WriteString("/")
		b.WriteString(url.PathEscape(param))
	}
	return b.String()
}

// Category builds the route for categoria/{ids...}
func Category(ids ...string) domain.Route {
	return domain.Route{Page: domain.PageCategory, Params: ids}
}
