package api

import (
	"catalog-service/internal/entity"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"errors"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser creates a new user --> POST /api/users/create-user
func (uh *UserHandler) CreateUser(c echo.Context) error {
	var req entity.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequestResponse(c, "Invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return badRequestResponse(c, validationMessages(err)...)
	}

	user := &entity.User{Username: req.Username, Password: req.Password}
	created, err := uh.userService.CreateUser(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return badRequestResponse(c, "Username already exists")
		}
		return fatalErrorResponse(c)
	}

	return createdResponse(c, created)
}

// ListAllUsers lists every user --> GET /api/users/list-all-users
func (uh *UserHandler) ListAllUsers(c echo.Context) error {
	users, err := uh.userService.GetUsers(c.Request().Context())
	if err != nil {
		return fatalErrorResponse(c)
	}

	return okResponse(c, users)
}

// DeleteUserByID deletes a user --> DELETE /api/users/delete-user-by-id
func (uh *UserHandler) DeleteUserByID(c echo.Context) error {
	id, msg := intQueryParam(c, "id")
	if msg != "" {
		return badRequestResponse(c, msg)
	}

	if err := uh.userService.DeleteUserByID(c.Request().Context(), id); err != nil {
		return fatalErrorResponse(c)
	}

	return noContentResponse(c)
}
