package domain

import "time"

// Role values issued by the remote API. The portal never invents roles; it
// only dispatches on the value the API reports.
const (
	RoleAdmin     = "admin"
	RoleDosen     = "dosen"
	RoleMahasiswa = "mahasiswa"
)

// User represents the identity record returned by the remote API.
// NIM is meaningful only for mahasiswa, NIP only for dosen and admin;
// absence of the other field is not an error.
type User struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Role            string     `json:"role"`
	NIM             string     `json:"nim,omitempty"`
	NIP             string     `json:"nip,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DisplayName returns the name shown in headers and greetings.
func (u *User) DisplayName() string { return u.Name }

// IdentifierLabel returns the role-specific identifier shown under the user's
// name: NIM for mahasiswa, NIP for dosen/admin, the email address otherwise.
func (u *User) IdentifierLabel() string {
	if u.Role == RoleMahasiswa && u.NIM != "" {
		return "NIM: " + u.NIM
	}
	if (u.Role == RoleAdmin || u.Role == RoleDosen) && u.NIP != "" {
		return "NIP: " + u.NIP
	}
	return u.Email
}

// Credentials carries a login form submission. Login accepts either an email
// address or a phone number; the remote API decides which it is.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Registration carries a registration form submission. Exactly one of NIM/NIP
// is required depending on the selected role; the remote API enforces it and
// reports a field error when it is missing.
type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
	NIM                  string `json:"nim,omitempty"`
	NIP                  string `json:"nip,omitempty"`
}

// AuthPayload is the data member of a successful login/register response.
type AuthPayload struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// APIResponse is the envelope every remote API endpoint wraps its payload in.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Session is the per-request view of the authenticated user. Loading is true
// only while hydration is in flight; an anonymous session has a nil User.
type Session struct {
	User    *User
	Loading bool
}

// Authenticated reports whether the session holds a user.
func (s *Session) Authenticated() bool { return s != nil && s.User != nil }

// Role returns the session user's role, or "" for an anonymous session.
func (s *Session) Role() string {
	if !s.Authenticated() {
		return ""
	}
	return s.User.Role
}

// RedirectPath maps a role to its dashboard. Unknown roles land on the root
// page rather than erroring.
func RedirectPath(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleDosen:
		return "/dosen"
	case RoleMahasiswa:
		return "/mahasiswa"
	default:
		return "/"
	}
}
