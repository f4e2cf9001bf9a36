package dto

// APIResponse is the uniform response envelope. Every endpoint, success or
// failure, answers with this shape.
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse builds a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewErrorResponse builds a failure envelope with a message.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
