package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{50000, "$50.000"},
		{240000, "$240.000"},
		{1234567, "$1.234.567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}

func TestSubcategoryLookup(t *testing.T) {
	cat := Category{
		ID: "hogar",
		Subcategories: []Subcategory{
			{ID: "bazar", Name: "Bazar"},
			{ID: "electrodomesticos", Name: "Electrodomésticos", Subcategories: []Subcategory{
				{ID: "cocina", Name: "Cocina"},
				{ID: "microondas", Name: "Microondas"},
			}},
		},
	}

	group, ok := cat.Subcategory("electrodomesticos")
	assert.True(t, ok)
	assert.True(t, group.IsGroup())
	assert.Equal(t, []string{"cocina", "microondas"}, group.ChildIDs())

	nested, ok := group.Child("microondas")
	assert.True(t, ok)
	assert.Equal(t, "Microondas", nested.Name)

	leaf, ok := cat.Subcategory("bazar")
	assert.True(t, ok)
	assert.False(t, leaf.IsGroup())

	_, ok = cat.Subcategory("nope")
	assert.False(t, ok)
}
