package server

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := s.service.Page(r.Context(), visitorID(r), r.URL.EscapedPath())

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		log.Errorf("❌ Failed to render %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if id, ok := productID(r); ok {
		s.service.AddToCart(r.Context(), visitorID(r), id)
	}
	redirectBack(w, r)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	if id, ok := productID(r); ok {
		s.service.RemoveFromCart(r.Context(), visitorID(r), id)
	}
	redirectBack(w, r)
}

func (s *Server) handleQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
	if ok && err == nil && (delta == 1 || delta == -1) {
		s.service.UpdateQuantity(r.Context(), visitorID(r), id, delta)
	}
	redirectBack(w, r)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	link, ok := s.service.Checkout(r.Context(), visitorID(r))
	if !ok {
		redirectBack(w, r)
		return
	}
	http.Redirect(w, r, link, http.StatusSeeOther)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.service.ContactLink(), http.StatusSeeOther)
}

// productID parses the path parameter; malformed ids behave like unknown ones
func productID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// redirectBack sends the visitor to the local page named by the "return" form
// field or the Referer, falling back to the home page.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := localPath(r.FormValue("return"))
	if target == "" {
		if ref, err := url.Parse(r.Referer()); err == nil && (ref.Host == "" || ref.Host == r.Host) {
			target = localPath(ref.Path)
		}
	}
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localPath accepts only same-site absolute paths. Control characters are
// rejected because browsers strip them, which could turn "/\t/x" into "//x".
func localPath(p string) string {
	if strings.ContainsFunc(p, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return ""
	}
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return ""
	}
	return p
}
