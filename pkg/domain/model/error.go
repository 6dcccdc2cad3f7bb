package model

// ErrorDetail is the body for requests that match no route, in the same
// shape as the detail responses of common Python web frameworks.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorResponse is the body for failures inside a handler
type ErrorResponse struct {
	Error string `json:"error"`
}
