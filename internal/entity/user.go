package entity

// User is an account that can mark planets and people as favorites.
// The password column stores a bcrypt hash and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active"`
	Username string `json:"username"`
}

// PublicUser is the wire shape for user listings: id, username, email.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public strips everything but the fields exposed over the API.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
