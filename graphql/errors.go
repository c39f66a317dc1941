package graphql

import "fmt"

// UserError is an error whose message is safe to show to API clients.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Extensions marks the error as a user error in the response.
func (e *UserError) Extensions() map[string]interface{} {
	return map[string]interface{}{"category": "user"}
}

// NewUserError formats a UserError.
func NewUserError(format string, args ...interface{}) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}
