package constant

import "net/http"

type CustomError struct {
	StatusCode int
	Message    string
}

func NewCError(statusCode int, message string) CustomError {
	return CustomError{StatusCode: statusCode, Message: message}
}

func (err CustomError) Error() string {
	return err.Message
}

var (
	ErrEmptyQuestion = NewCError(http.StatusBadRequest,
		"Question cannot be empty")
	ErrInvalidBody = NewCError(http.StatusBadRequest,
		"Request body must be a JSON object")
)
