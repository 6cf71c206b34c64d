package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic acknowledgement body for operations
// without a richer result.
type MessageResponse struct {
	Message string `json:"message"`
}
