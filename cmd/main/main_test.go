package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(".", "config.yaml"), []byte("catalog:\n  seed: 5\nlog:\n  level: warn\n"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := execute(t, "render", "categoria/tecnologia")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 60, doc.Find("#app-container .product-card").Length())
	assert.Contains(t, doc.Find("#breadcrumbs").Text(), "Tecnología")
	assert.Equal(t, "0", doc.Find("#cart-count").Text())
}

func TestCatalogCommand(t *testing.T) {
	out := execute(t, "catalog")

	var dump catalogDump
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	assert.Len(t, dump.Categories, 3)
	assert.Len(t, dump.Products, 160)
	assert.Equal(t, 1, dump.Products[0].ID)
}

func TestRenderRejectsExtraArgs(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "a", "b"})
	assert.Error(t, cmd.Execute())
}
