package response

// Envelope is the uniform wrapper for every API response.
// Exactly one of Data or Error is populated.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// OK builds a success envelope around data.
func OK(data any) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}

// Created builds a success envelope with a confirmation message.
func Created(data any, message string) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// List builds a success envelope for list endpoints, including the total count.
func List(data any, total int) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Total:   &total,
	}
}

// Deleted builds a success envelope carrying only a message.
func Deleted(message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
	}
}
