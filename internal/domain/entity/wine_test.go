package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/wine-mart/internal/domain/entity"
)

func TestParseWineType(t *testing.T) {
	cases := map[string]entity.WineType{
		"Red":    entity.WineTypeRed,
		"red":    entity.WineTypeRed,
		" WHITE": entity.WineTypeWhite,
		"rose":   entity.WineTypeRose,
		"Rosé":   entity.WineTypeRose,
	}
	for in, want := range cases {
		got, ok := entity.ParseWineType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := entity.ParseWineType("Sparkling")
	assert.False(t, ok)
	_, ok = entity.ParseWineType("")
	assert.False(t, ok)
}

func TestWine_LabelYStock(t *testing.T) {
	w := &entity.Wine{ID: 1, Name: "Merlot", Type: entity.WineTypeRed, Price: decimal.NewFromInt(500), Stock: 10}
	assert.Equal(t, "1 - Merlot (500) | Stock: 10", w.Label())
	assert.True(t, w.HasStock(10))
	assert.False(t, w.HasStock(11))
}

func TestTotalFor(t *testing.T) {
	assert.True(t, decimal.NewFromInt(1500).Equal(entity.TotalFor(decimal.NewFromInt(500), 3)))
	assert.True(t, decimal.RequireFromString("37.50").Equal(entity.TotalFor(decimal.RequireFromString("12.50"), 3)))
	assert.True(t, decimal.Zero.Equal(entity.TotalFor(decimal.Zero, 4)))
}
