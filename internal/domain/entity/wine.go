package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WineType tipo de vino (enumeración cerrada).
type WineType string

// Tipos de vino soportados.
const (
	WineTypeRed   WineType = "Red"
	WineTypeWhite WineType = "White"
	WineTypeRose  WineType = "Rose"
)

// WineTypes lista los tipos en el orden en que se ofrecen al usuario.
func WineTypes() []WineType {
	return []WineType{WineTypeRed, WineTypeWhite, WineTypeRose}
}

var titleCaser = cases.Title(language.Und)

// ParseWineType normaliza la entrada ("red", " ROSE ", "rosé") y la valida contra la enumeración.
func ParseWineType(s string) (WineType, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "é", "e")
	s = strings.ReplaceAll(s, "É", "E")
	t := WineType(titleCaser.String(strings.ToLower(s)))
	for _, known := range WineTypes() {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Wine representa un vino del inventario. Solo Stock cambia después de creado (vía compras).
type Wine struct {
	ID    int64
	Name  string
	Type  WineType
	Price decimal.Decimal // precio unitario de venta
	Stock int             // unidades disponibles, nunca negativo
}

// HasStock indica si hay al menos quantity unidades disponibles.
func (w *Wine) HasStock(quantity int) bool {
	return w.Stock >= quantity
}

// Label etiqueta usada para seleccionar el vino al comprar: "1 - Merlot (500) | Stock: 10".
func (w *Wine) Label() string {
	return fmt.Sprintf("%d - %s (%s) | Stock: %d", w.ID, w.Name, w.Price.String(), w.Stock)
}
