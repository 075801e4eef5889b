package domain

import "strings"

// User is a registered member of the organizer. The password is stored as an
// opaque string; hashing is outside the scope of this service.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Validate checks business rules for the User entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if u.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if strings.TrimSpace(u.FirstName) == "" {
		fields["first_name"] = MsgRequired
	}
	if strings.TrimSpace(u.LastName) == "" {
		fields["last_name"] = MsgRequired
	}
	if strings.TrimSpace(u.Email) == "" {
		fields["email"] = MsgRequired
	} else if !strings.Contains(u.Email, "@") {
		fields["email"] = "must be a valid address"
	}
	if u.Password == "" {
		fields["password"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// NormalizeEmail folds an email address to its canonical form for
// uniqueness comparison: surrounding whitespace removed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
