package account

import (
	"net/mail"
	"strings"

	"github.com/2beens/fitbuddy/internal/apperr"
	"github.com/2beens/fitbuddy/pkg"

	"go.uber.org/multierr"
)

const (
	MinPasswordLength = 6
	// bcrypt refuses longer input
	MaxPasswordLength = 72
)

type Account struct {
	ID           int           `json:"id"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	CreatedAt    pkg.Timestamp `json:"createdAt"`
}

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (in RegisterInput) Validate() error {
	var err error
	if addr, parseErr := mail.ParseAddress(in.Email); parseErr != nil || addr.Address != strings.TrimSpace(in.Email) {
		err = multierr.Append(err, apperr.Invalid("email", "invalid email address"))
	}
	if len(in.Password) < MinPasswordLength {
		err = multierr.Append(err, apperr.Invalid("password", "must have at least %d characters", MinPasswordLength))
	} else if len(in.Password) > MaxPasswordLength {
		err = multierr.Append(err, apperr.Invalid("password", "must have at most %d bytes", MaxPasswordLength))
	}
	if in.Password != in.ConfirmPassword {
		err = multierr.Append(err, apperr.Invalid("confirmPassword", "passwords do not match"))
	}
	return err
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
