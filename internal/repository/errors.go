package repository

import "errors"

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUsernameExists indicates a user creation hit an existing username.
var ErrUsernameExists = errors.New("username already exists")
