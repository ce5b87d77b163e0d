package checkout

import (
	"net/url"
	"strings"
	"testing"

	"redlenic/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter() *Formatter {
	return NewFormatter("Red Lenic", "5491136574678", "Hola Red Lenic! Tengo una consulta.")
}

func entry(id int, name string, price, quantity int) domain.CartEntry {
	return domain.CartEntry{
		Product:  domain.Product{ID: id, Name: name, Price: price},
		Quantity: quantity,
	}
}

func TestFormat_SingleEntry(t *testing.T) {
	msg, ok := newTestFormatter().Format([]domain.CartEntry{
		entry(1, "Celulares B-42", 120000, 2),
	})
	require.True(t, ok)

	assert.Contains(t, msg, "2x Celulares B-42 - $240.000")

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "*Hola Red Lenic! Quiero realizar el siguiente pedido:*", lines[0])
	assert.Equal(t, "*Total: $240.000*", lines[len(lines)-1])
}

func TestFormat_KeepsInsertionOrder(t *testing.T) {
	msg, ok := newTestFormatter().Format([]domain.CartEntry{
		entry(9, "Bazar C-1", 60000, 1),
		entry(2, "Celulares B-42", 120000, 3),
	})
	require.True(t, ok)

	assert.Equal(t,
		"*Hola Red Lenic! Quiero realizar el siguiente pedido:*\n\n"+
			"• 1x Bazar C-1 - $60.000\n"+
			"• 3x Celulares B-42 - $360.000\n"+
			"\n*Total: $420.000*",
		msg)
}

func TestFormat_EmptyCartRefused(t *testing.T) {
	f := newTestFormatter()

	msg, ok := f.Format(nil)
	assert.False(t, ok)
	assert.Empty(t, msg)

	link, ok := f.OrderLink([]domain.CartEntry{})
	assert.False(t, ok)
	assert.Empty(t, link)
}

func TestOrderLink(t *testing.T) {
	entries := []domain.CartEntry{entry(1, "Celulares B-42", 120000, 2)}
	f := newTestFormatter()

	link, ok := f.OrderLink(entries)
	require.True(t, ok)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/5491136574678", u.Path)

	msg, _ := f.Format(entries)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestContactLink(t *testing.T) {
	u, err := url.Parse(newTestFormatter().ContactLink())
	require.NoError(t, err)
	assert.Equal(t, "Hola Red Lenic! Tengo una consulta.", u.Query().Get("text"))
}

func TestLink(t *testing.T) {
	f := newTestFormatter()
	entries := []domain.CartEntry{entry(1, "Celulares B-42", 120000, 1)}

	msg, ok := f.Format(entries)
	require.True(t, ok)
	link, _ := f.OrderLink(entries)
	assert.Equal(t, link, f.Link(msg))

	u, err := url.Parse(f.Link("a & b"))
	require.NoError(t, err)
	assert.Equal(t, "a & b", u.Query().Get("text"))
}
