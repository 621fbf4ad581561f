package dto

// ResultType classifies an operation outcome for the client, which renders
// a toast per type.
type ResultType string

const (
	ResultSuccess ResultType = "success"
	ResultWarning ResultType = "warning"
	ResultError   ResultType = "error"
)

// Result is the envelope every endpoint responds with. It is the single
// channel for reporting business outcomes; the HTTP status code is derived
// from the error kind, never from the message text.
type Result[T any] struct {
	IsSuccess bool       `json:"isSuccess"`
	Data      T          `json:"data,omitempty"`
	Message   string     `json:"message,omitempty"`
	Type      ResultType `json:"type"`
}

// SuccessResult wraps a payload in a success envelope.
func SuccessResult[T any](data T) Result[T] {
	return Result[T]{IsSuccess: true, Data: data, Type: ResultSuccess}
}

// WarningResult builds a warning envelope for a warning-grade rejection.
// The operation did not go through; the classification exists so the client
// can present it less severely than an error.
func WarningResult(message string) Result[any] {
	return Result[any]{IsSuccess: false, Message: message, Type: ResultWarning}
}

// ErrorResult builds an error envelope.
func ErrorResult(message string) Result[any] {
	return Result[any]{IsSuccess: false, Message: message, Type: ResultError}
}
