package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"redlenic/storefront/internal/domain"
)

const whatsAppBaseURL = "https://wa.me/"

// Formatter turns cart contents into the order message sent through WhatsApp
type Formatter struct {
	storeName   string
	phoneNumber string
	inquiryText string
}

func NewFormatter(storeName, phoneNumber, inquiryText string) *Formatter {
	return &Formatter{
		storeName:   storeName,
		phoneNumber: phoneNumber,
		inquiryText: inquiryText,
	}
}

// Format builds the order text. It refuses (false) for an empty cart.
func (f *Formatter) Format(entries []domain.CartEntry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Hola %s! Quiero realizar el siguiente pedido:*\n\n", f.storeName)

	total := 0
	for _, e := range entries {
		fmt.Fprintf(&b, "• %dx %s - %s\n", e.Quantity, e.Name, domain.FormatPrice(e.LineTotal()))
		total += e.LineTotal()
	}
	fmt.Fprintf(&b, "\n*Total: %s*", domain.FormatPrice(total))

	return b.String(), true
}

// OrderLink is the deep link carrying the order text, false for an empty cart
func (f *Formatter) OrderLink(entries []domain.CartEntry) (string, bool) {
	message, ok := f.Format(entries)
	if !ok {
		return "", false
	}
	return f.Link(message), true
}

// ContactLink is the deep link with the fixed inquiry text
func (f *Formatter) ContactLink() string {
	return f.Link(f.inquiryText)
}

// Link is the wa.me deep link to the store number carrying text
func (f *Formatter) Link(text string) string {
	return whatsAppBaseURL + url.PathEscape(f.phoneNumber) + "?" + url.Values{"text": {text}}.Encode()
}
