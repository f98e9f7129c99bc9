package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"puntoventa/internal/core/types"
)

func TestComputeFinal(t *testing.T) {
	tests := []struct {
		name    string
		base    float64
		taxRate float64
		want    string
	}{
		{"15 percent", 100, 0.15, "115"},
		{"zero rate", 100, 0, "100"},
		{"rounds half up", 10.333, 0.16, "11.99"},
		{"zero base", 0, 0.15, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinal(types.NewMoney(tt.base), types.NewMoney(tt.taxRate))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestComputeFinal_NeverBelowBase(t *testing.T) {
	// final >= base for any non-negative rate, equal only at rate 0.
	bases := []float64{0, 0.01, 1, 99.99, 12345.67}
	rates := []float64{0, 0.08, 0.15, 0.21, 1}

	for _, b := range bases {
		for _, r := range rates {
			base := types.NewMoney(b)
			final := ComputeFinal(base, types.NewMoney(r))
			assert.True(t, final.GreaterThanOrEqual(base),
				"final %s < base %s at rate %v", final, base, r)
			if r == 0 {
				assert.True(t, final.Equal(base))
			}
		}
	}
}

func TestBaseFromFinal(t *testing.T) {
	base := BaseFromFinal(types.NewMoney(115), types.NewMoney(0.15))
	assert.Equal(t, "100", base.String())

	// Zero divisor guard: rate -1 would divide by zero.
	same := BaseFromFinal(types.NewMoney(115), types.NewMoney(-1))
	assert.Equal(t, "115", same.String())
}

func TestConvert(t *testing.T) {
	got := Convert(types.NewMoney(50), types.MustMoney("25.50"))
	assert.Equal(t, "1275", got.String())

	got = Convert(types.MustMoney("10.55"), types.MustMoney("17.3"))
	assert.Equal(t, "182.52", got.String())
}

func TestTaxRateOrZero(t *testing.T) {
	assert.True(t, TaxRateOrZero(nil).IsZero())

	percent := types.NewMoney(16)
	rate := TaxRateOrZero(&percent)
	assert.Equal(t, "0.16", rate.String())
}
