// Package menu define las acciones que ofrece el punto de venta. Cualquier capa de presentación
// (HTTP, CLI) despacha sobre esta enumeración cerrada en lugar de comparar cadenas sueltas.
package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction la cadena no corresponde a ninguna acción del menú.
var ErrUnknownAction = errors.New("acción desconocida")

// Action acción del menú.
type Action int

// Acciones del menú, en el orden en que se muestran.
const (
	AddWine Action = iota + 1
	ViewInventory
	PurchaseWine
	SalesReport
)

// Route método y ruta HTTP que atiende una acción.
type Route struct {
	Method string
	Path   string
}

type actionInfo struct {
	key   string
	label string
	route Route
}

var actions = map[Action]actionInfo{
	AddWine:       {key: "add-wine", label: "Agregar vino", route: Route{Method: "POST", Path: "/api/wines"}},
	ViewInventory: {key: "view-inventory", label: "Ver inventario", route: Route{Method: "GET", Path: "/api/wines"}},
	PurchaseWine:  {key: "purchase-wine", label: "Comprar vino", route: Route{Method: "POST", Path: "/api/purchases"}},
	SalesReport:   {key: "sales-report", label: "Reporte de ventas", route: Route{Method: "GET", Path: "/api/sales/report"}},
}

// All devuelve todas las acciones en orden de menú.
func All() []Action {
	return []Action{AddWine, ViewInventory, PurchaseWine, SalesReport}
}

// Parse convierte la clave ("purchase-wine") en la acción correspondiente.
func Parse(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range All() {
		if actions[a].key == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Valid indica si a pertenece a la enumeración.
func (a Action) Valid() bool {
	_, ok := actions[a]
	return ok
}

// String devuelve la clave estable de la acción.
func (a Action) String() string {
	if info, ok := actions[a]; ok {
		return info.key
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Label título para mostrar en el menú.
func (a Action) Label() string {
	return actions[a].label
}

// Route ruta HTTP de la acción.
func (a Action) Route() Route {
	return actions[a].route
}
