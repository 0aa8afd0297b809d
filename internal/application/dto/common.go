package dto

// ErrorResponse cuerpo de error HTTP.
// Code distingue validación (VALIDATION), referencia obsoleta (NOT_FOUND) y
// fallos genéricos del backend (INTERNAL) para que el cliente pueda mostrar
// mensajes de campo frente a mensajes de sistema.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // campo ofensor en errores de validación
}

// MessageResponse confirmación simple (ej. borrado).
type MessageResponse struct {
	Message string `json:"message"`
}
