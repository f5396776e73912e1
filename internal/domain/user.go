package domain

// User is the session-scoped identity used to pre-fill checkout fields.
// Authentication beyond the mock registry is out of scope; pricing and the
// cart never depend on it.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Region    string
}

// User-specific errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
	ErrDuplicateEmail     = &Error{Code: ECONFLICT, Message: "An account with this email already exists"}
)
