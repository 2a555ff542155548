package services

// Service errors
var (
	ErrInvalidCredentials = &ServiceError{Message: "invalid username or password"}
	ErrUserExists         = &ServiceError{Message: "username or email already registered"}
	ErrBuiltinGame        = &ServiceError{Message: "built-in games cannot be removed"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
