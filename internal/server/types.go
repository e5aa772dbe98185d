package server

import (
	"github.com/rezonia/zatca-egs/internal/ubl"
)

// MapResponse is the response for the relay map endpoint
type MapResponse struct {
	Invoice *ubl.Invoice `json:"invoice"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
