// Package identity owns user accounts: password hashing, normalized
// uniqueness of user name and email, and read-only lockout checks.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"packingapp/internal/model"
	"packingapp/internal/repository"
	"packingapp/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("credenciales invalidas")
	ErrLockedOut          = errors.New("la cuenta está bloqueada")
)

// Failure codes carried in validation.FieldError.Code.
const (
	CodeDuplicateUserName               = "DuplicateUserName"
	CodeDuplicateEmail                  = "DuplicateEmail"
	CodeInvalidEmail                    = "InvalidEmail"
	CodeInvalidUserName                 = "InvalidUserName"
	CodePasswordTooShort                = "PasswordTooShort"
	CodePasswordRequiresDigit           = "PasswordRequiresDigit"
	CodePasswordRequiresLower           = "PasswordRequiresLower"
	CodePasswordRequiresUpper           = "PasswordRequiresUpper"
	CodePasswordRequiresNonAlphanumeric = "PasswordRequiresNonAlphanumeric"
)

const createPrefix = "Error al crear usuario"

const allowedUserNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"

// Provider is what the services need from the identity collaborator.
type Provider interface {
	// CreateAccount returns *validation.Errors when a rule fails.
	CreateAccount(ctx context.Context, email, userName, password string) (*model.Usuario, error)
	// FindAccount returns nil, nil when no account has the id.
	FindAccount(ctx context.Context, id string) (*model.Usuario, error)
	ValidateCredentials(ctx context.Context, userNameOrEmail, password string) (*model.Usuario, error)
}

// AccountStore persists accounts. Finders return nil, nil when absent.
type AccountStore interface {
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	FindByNormalizedUserName(ctx context.Context, normalized string) (*model.Usuario, error)
	FindByNormalizedEmail(ctx context.Context, normalized string) (*model.Usuario, error)
	Create(ctx context.Context, u *model.Usuario) error
}

// Options tune the password policy and hashing cost.
type Options struct {
	PasswordMinLength int
	BcryptCost        int
	Now               func() time.Time
}

// Manager is the default Provider.
type Manager struct {
	store    AccountStore
	opts     Options
	validate *validator.Validate
}

var _ Provider = (*Manager)(nil)

func NewManager(store AccountStore, opts Options) *Manager {
	if opts.PasswordMinLength <= 0 {
		opts.PasswordMinLength = 6
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = 12
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Manager{store: store, opts: opts, validate: validator.New()}
}

// Normalize is the case-insensitive form used for uniqueness.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (m *Manager) CreateAccount(ctx context.Context, email, userName, password string) (*model.Usuario, error) {
	verr := &validation.Errors{Prefix: createPrefix}

	if userName == "" || strings.IndexFunc(userName, func(r rune) bool {
		return !strings.ContainsRune(allowedUserNameChars, r)
	}) >= 0 {
		verr.Add("NombreUsuario", CodeInvalidUserName, "El nombre de usuario '"+userName+"' no es válido")
	}
	if err := m.validate.Var(email, "required,email"); err != nil {
		verr.Add("Email", CodeInvalidEmail, "El email '"+email+"' no es válido")
	}
	m.checkPassword(verr, password)

	normName := Normalize(userName)
	normEmail := Normalize(email)

	if _, err := m.checkTaken(ctx, verr, userName, email); err != nil {
		return nil, err
	}

	if !verr.Empty() {
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		ID:                 uuid.NewString(),
		UserName:           userName,
		NormalizedUserName: normName,
		Email:              &email,
		NormalizedEmail:    &normEmail,
		EmailConfirmed:     false,
		PasswordHash:       string(hash),
		SecurityStamp:      uuid.NewString(),
		LockoutEnabled:     true,
		Vigente:            true,
	}
	if err := m.store.Create(ctx, u); err != nil {
		// Lost a race against a concurrent registration; the winner is
		// committed, so a second lookup names the colliding key.
		if repository.IsDuplicate(err) {
			taken, lookupErr := m.checkTaken(ctx, verr, userName, email)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if !taken {
				verr.Add("NombreUsuario", CodeDuplicateUserName, "El nombre de usuario '"+userName+"' ya está en uso")
			}
			return nil, verr
		}
		return nil, err
	}
	return u, nil
}

// checkTaken adds a duplicate entry for each normalized key already in use
// and reports whether any was found.
func (m *Manager) checkTaken(ctx context.Context, verr *validation.Errors, userName, email string) (bool, error) {
	taken := false
	if userName != "" {
		existing, err := m.store.FindByNormalizedUserName(ctx, Normalize(userName))
		if err != nil {
			return false, err
		}
		if existing != nil {
			verr.Add("NombreUsuario", CodeDuplicateUserName, "El nombre de usuario '"+userName+"' ya está en uso")
			taken = true
		}
	}
	if email != "" {
		existing, err := m.store.FindByNormalizedEmail(ctx, Normalize(email))
		if err != nil {
			return false, err
		}
		if existing != nil {
			verr.Add("Email", CodeDuplicateEmail, "El email '"+email+"' ya está en uso")
			taken = true
		}
	}
	return taken, nil
}

func (m *Manager) checkPassword(verr *validation.Errors, password string) {
	if utf8.RuneCountInString(password) < m.opts.PasswordMinLength {
		verr.Add("Password", CodePasswordTooShort, "La contraseña es demasiado corta")
	}
	var digit, lower, upper, other bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r):
			other = true
		}
	}
	if !digit {
		verr.Add("Password", CodePasswordRequiresDigit, "La contraseña debe tener al menos un dígito")
	}
	if !lower {
		verr.Add("Password", CodePasswordRequiresLower, "La contraseña debe tener al menos una minúscula")
	}
	if !upper {
		verr.Add("Password", CodePasswordRequiresUpper, "La contraseña debe tener al menos una mayúscula")
	}
	if !other {
		verr.Add("Password", CodePasswordRequiresNonAlphanumeric, "La contraseña debe tener al menos un carácter no alfanumérico")
	}
}

func (m *Manager) FindAccount(ctx context.Context, id string) (*model.Usuario, error) {
	return m.store.FindByID(ctx, id)
}

// ValidateCredentials looks the account up by user name, then by email.
// Lockout is only read: failed attempts are not counted.
func (m *Manager) ValidateCredentials(ctx context.Context, userNameOrEmail, password string) (*model.Usuario, error) {
	norm := Normalize(userNameOrEmail)
	u, err := m.store.FindByNormalizedUserName(ctx, norm)
	if err != nil {
		return nil, err
	}
	if u == nil {
		if u, err = m.store.FindByNormalizedEmail(ctx, norm); err != nil {
			return nil, err
		}
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if u.LockoutEnabled && u.LockoutEnd != nil && u.LockoutEnd.After(m.opts.Now().UTC()) {
		return nil, ErrLockedOut
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
