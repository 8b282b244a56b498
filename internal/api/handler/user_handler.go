package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/api/metrics"
	"github.com/navihub/navihub/internal/core/domain"
	"github.com/navihub/navihub/internal/core/ports"
)

// UserHandler handles HTTP requests for account administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every account, without password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  userResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserListResponse(users))
}

// Create adds a new account with a freshly hashed password.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User fields"
// @Success      200   {object}  userResponse
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	req, err := bindUserRequest(c)
	if err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Update overwrites username, email, password and admin flag.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "User fields"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	req, err := bindUserRequest(c)
	if err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// Delete removes an account. Deleting the account the caller is logged in
// as is rejected.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller.ID, id); err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// Me returns the caller's own record.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(caller))
}

func bindUserRequest(c echo.Context) (*userRequest, error) {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func (r *userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
	}
}

func userID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}
