package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensFor(t *testing.T) {
	tests := []struct {
		name     string
		carbonKG float64
		rate     float64
		want     float64
	}{
		{name: "five kg at default rate", carbonKG: 5, rate: 10, want: 50},
		{name: "zero earns zero", carbonKG: 0, rate: 10, want: 0},
		{name: "fractional kg", carbonKG: 0.5, rate: 10, want: 5},
		{name: "rounds to two decimals", carbonKG: 0.333, rate: 10, want: 3.33},
		{name: "rounds half up", carbonKG: 0.125, rate: 10, want: 1.25},
		{name: "sub-cent rounds away", carbonKG: 0.0004, rate: 10, want: 0},
		{name: "ceiling value", carbonKG: 1000, rate: 10, want: 10000},
		{name: "custom rate", carbonKG: 2, rate: 7.5, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokensFor(tt.carbonKG, tt.rate))
		})
	}
}
