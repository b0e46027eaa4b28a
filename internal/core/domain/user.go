package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor. PasswordHash is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
