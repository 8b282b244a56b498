package domain

// User models an account in the directory. Only admins may mutate links or
// manage other accounts; regular users read the directory and their own record.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}
