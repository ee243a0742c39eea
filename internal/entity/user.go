package entity

// User represents a row in the users table.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=20,alphanum"`
	Password string `json:"password" validate:"required,max=32"`
}
