package handler

import "github.com/navihub/navihub/internal/core/domain"

// userRequest is the payload for both create and update. The password is
// mandatory in both cases: user updates are full replacements and always
// re-hash the supplied password.
type userRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

// userResponse deliberately has no password field; hashes never leave the
// process.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

func newUserListResponse(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

// messageResponse is the confirmation envelope returned by delete endpoints.
type messageResponse struct {
	Message string `json:"message"`
}
