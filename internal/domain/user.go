package domain

// Roles as reported by the backend.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// AuthResponse is the payload returned by both the login and the register
// endpoints. It is stored verbatim as the session profile.
type AuthResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type,omitempty"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	Role      string `json:"role"`
}

// User is the profile shape returned by /api/auth/me and the admin user list.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role"`
}
