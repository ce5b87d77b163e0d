package domain

import (
	"github.com/dustin/go-humanize"
)

// FormatPrice renders whole pesos the way es-AR shows them: "$240.000"
func FormatPrice(amount int) string {
	return "$" + humanize.FormatInteger("#.###,", amount)
}
