package dto

// ErrorResponse cuerpo de error HTTP. Code se omite cuando el contrato del
// endpoint exige solo {"message": ...} (errores 500 genéricos).
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
