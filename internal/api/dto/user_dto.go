package dto

// CreateUserRequest payload for new users. Only presence is validated; email
// format checks are out of scope.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}
