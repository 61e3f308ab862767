package models

// ItemResponse and ItemsResponse are the envelopes used by the upstream
// profile and orders services.
type ItemResponse[T any] struct {
	Item T `json:"item"`
}

type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type RedirectResponse struct {
	Success  bool        `json:"success"`
	Redirect string      `json:"redirect"`
	State    interface{} `json:"state,omitempty"`
}
