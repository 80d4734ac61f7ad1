package dto

// ErrorResponse is the structured error body non-2xx responses may carry.
type ErrorResponse struct {
	Error string `json:"error"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
