package contract

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
)

func TestProductIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      ProductID
		wantErr bool
	}{
		{"valid slug", "hl-peak-200", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	t.Run("NewSessionID generates valid UUID", func(t *testing.T) {
		id := NewSessionID()
		assert.False(t, id.IsEmpty())
		assert.NoError(t, id.Validate())
	})

	t.Run("valid UUID string passes", func(t *testing.T) {
		id := SessionID(uuid.NewString())
		assert.NoError(t, id.Validate())
	})

	t.Run("non-UUID string is rejected", func(t *testing.T) {
		id := SessionID("../../etc/passwd")
		err := id.Validate()
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("empty is rejected", func(t *testing.T) {
		assert.Error(t, SessionID("").Validate())
	})
}

func TestCartLineValidate(t *testing.T) {
	valid := CartLine{ProductID: "hl-peak-200", Name: "Peak 200 Headlamp", Price: 34.99, Quantity: 2}

	t.Run("valid line", func(t *testing.T) {
		l := valid
		assert.NoError(t, l.Validate())
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		l := valid
		l.Quantity = 0
		assert.Error(t, l.Validate())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		l := valid
		l.Price = -1
		assert.Error(t, l.Validate())
	})

	t.Run("missing product id is rejected", func(t *testing.T) {
		l := valid
		l.ProductID = ""
		assert.Error(t, l.Validate())
	})
}

func TestCartLineLineTotal(t *testing.T) {
	l := CartLine{ProductID: "wb-titan-1l", Price: 24.00, Quantity: 3}
	assert.InDelta(t, 72.00, l.LineTotal(), 1e-9)
}
