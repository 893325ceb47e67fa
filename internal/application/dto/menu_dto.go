package dto

// MenuItemResponse una acción del menú del punto de venta.
type MenuItemResponse struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Method string `json:"method"`
	Path   string `json:"path"`
}
