package serverutils

type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

// ErrorEnvelope is the uniform error shape every handler surfaces. Data
// carries the opaque cause for diagnostics, never a stack trace.
type ErrorEnvelope struct {
	StatusCode    int         `json:"statusCode"`
	StatusMessage string      `json:"statusMessage"`
	Data          interface{} `json:"data,omitempty"`
}

func ErrorResponse(statusCode int, statusMessage string) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode:    statusCode,
		StatusMessage: statusMessage,
	}
}

func ErrorResponseWithData(statusCode int, statusMessage string, data interface{}) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode:    statusCode,
		StatusMessage: statusMessage,
		Data:          data,
	}
}
