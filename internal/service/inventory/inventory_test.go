package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

func TestLowStockThreshold(t *testing.T) {
	tests := []struct {
		name       string
		categoryID contract.CategoryID
		expected   int
	}{
		{"knives have tightest threshold", "knives", 3},
		{"hiking socks have loosest threshold", "hiking-socks", 8},
		{"multi-tools", "multi-tools", 4},
		{"water bottles", "water-bottles", 6},
		{"unknown category uses default", "tents", DefaultLowStockThreshold},
		{"empty category uses default", "", DefaultLowStockThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowStockThreshold(tt.categoryID))
		})
	}
}

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name       string
		stock      int
		categoryID contract.CategoryID
		expected   bool
	}{
		{"at threshold is low", 3, "knives", true},
		{"below threshold is low", 2, "knives", true},
		{"above threshold is not low", 4, "knives", false},
		{"zero stock is out of stock not low", 0, "knives", false},
		{"negative stock is not low", -1, "knives", false},
		{"unknown category at default threshold", 5, "tents", true},
		{"unknown category above default threshold", 6, "tents", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLowStock(tt.stock, tt.categoryID))
		})
	}
}
