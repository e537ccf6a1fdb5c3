//go:build !integration

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGirth(t *testing.T) {
	tests := []struct {
		name     string
		length   float64
		width    float64
		height   float64
		expected float64
	}{
		{
			name:     "standard board parcel",
			length:   1060,
			width:    500,
			height:   120,
			expected: 2300,
		},
		{
			name:     "cube",
			length:   100,
			width:    100,
			height:   100,
			expected: 500,
		},
		{
			name:     "zero dimensions",
			length:   0,
			width:    0,
			height:   0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Girth(tt.length, tt.width, tt.height))
		})
	}
}

func TestParcel_Add(t *testing.T) {
	t.Run("first board sets padded dimensions", func(t *testing.T) {
		p := &Parcel{}
		p.Add(Board{
			Name:        "Oak board",
			LengthMM:    1000,
			WidthMM:     440,
			ThicknessMM: 60,
			WeightKG:    13.73,
			Quantity:    1,
		}, 30)

		assert.Equal(t, 1060.0, p.LengthMM)
		assert.Equal(t, 500.0, p.WidthMM)
		assert.Equal(t, 120.0, p.HeightMM)
		assert.Equal(t, 13.73, p.WeightKG)
		assert.Equal(t, 2300.0, p.GirthMM)
		assert.Equal(t, []string{"Oak board (1000 x 440 x 60) - 13.73 kg"}, p.Items)
	})

	t.Run("second board stacks in height", func(t *testing.T) {
		p := &Parcel{}
		board := Board{
			Name:        "Oak board",
			LengthMM:    1000,
			WidthMM:     440,
			ThicknessMM: 60,
			WeightKG:    13.73,
			Quantity:    1,
		}
		p.Add(board, 30)
		p.Add(board, 30)

		// Length and width keep the max footprint, height grows by one
		// bare thickness per extra board.
		assert.Equal(t, 1060.0, p.LengthMM)
		assert.Equal(t, 500.0, p.WidthMM)
		assert.Equal(t, 180.0, p.HeightMM)
		assert.Equal(t, 27.46, p.WeightKG)
		assert.Equal(t, 2420.0, p.GirthMM)
		assert.Equal(t, 2, p.BoardCount())
	})

	t.Run("wider board extends footprint", func(t *testing.T) {
		p := &Parcel{}
		p.Add(Board{Name: "a", LengthMM: 500, WidthMM: 200, ThicknessMM: 20, WeightKG: 2, Quantity: 1}, 30)
		p.Add(Board{Name: "b", LengthMM: 900, WidthMM: 300, ThicknessMM: 20, WeightKG: 3, Quantity: 1}, 30)

		assert.Equal(t, 960.0, p.LengthMM)
		assert.Equal(t, 360.0, p.WidthMM)
		assert.Equal(t, 100.0, p.HeightMM)
	})

	t.Run("bundle label carries quantity", func(t *testing.T) {
		p := &Parcel{}
		p.Add(Board{
			Name:        "T&G cladding",
			LengthMM:    2000,
			WidthMM:     120,
			ThicknessMM: 15,
			WeightKG:    1.87,
			Quantity:    8,
			Bundle:      true,
		}, 30)

		assert.Equal(t, []string{"T&G cladding (2000 x 120 x 15) x8 - 14.96 kg"}, p.Items)
		assert.Equal(t, 180.0, p.HeightMM) // 8 * 15 + 2 * 30
		assert.Equal(t, 14.96, p.WeightKG)
	})
}

func TestParcel_Extend(t *testing.T) {
	p := &Parcel{}
	board := Board{Name: "a", LengthMM: 1000, WidthMM: 440, ThicknessMM: 60, WeightKG: 10, Quantity: 1}

	length, width, height, weight, girth := p.Extend(board, 30)
	assert.Equal(t, 1060.0, length)
	assert.Equal(t, 500.0, width)
	assert.Equal(t, 120.0, height)
	assert.Equal(t, 10.0, weight)
	assert.Equal(t, 2300.0, girth)

	// Extend must not mutate the parcel.
	assert.True(t, p.Empty())
	assert.Equal(t, 0.0, p.GirthMM)
}

func TestBoard_TotalWeightKG(t *testing.T) {
	assert.Equal(t, 4.81, Board{WeightKG: 4.81, Quantity: 1}.TotalWeightKG())
	assert.Equal(t, 43.29, Board{WeightKG: 4.81, Quantity: 9}.TotalWeightKG())
}

func TestItem_UnitCount(t *testing.T) {
	assert.Equal(t, 1, Item{}.UnitCount())
	assert.Equal(t, 1, Item{Qty: -3}.UnitCount())
	assert.Equal(t, 5, Item{Qty: 5}.UnitCount())
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 13.7, RoundMoney(13.702))
	assert.Equal(t, 13.71, RoundMoney(13.705))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, 147.02, RoundMoney(73.51+73.51))
}
