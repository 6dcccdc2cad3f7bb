package model

// GreetingMessage is the fixed message returned by the root endpoint
const GreetingMessage = "Hello from EKS!"

// Greeting represents the root endpoint response
type Greeting struct {
	Message string `json:"message"`
}
