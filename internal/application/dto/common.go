package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo de sucesso com mensagem.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDMessageResponse corpo de sucesso com o id criado e mensagem.
type IDMessageResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
