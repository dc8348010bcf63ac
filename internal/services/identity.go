package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDomainNotAllowed   = errors.New("email domain is not allowed")
)

// Identity checks the single configured operator account. Sign-in is refused
// for any address outside the allowed domain before the password is looked at.
type Identity struct {
	email         string
	passwordHash  []byte
	allowedDomain string
}

// NewIdentity takes either a bcrypt hash or a plain password; the hash wins
// when both are set.
func NewIdentity(email, passwordHash, password, allowedDomain string) (*Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.New("identity email is required")
	}

	hash := []byte(passwordHash)
	if len(hash) == 0 {
		if password == "" {
			return nil, errors.New("identity password or password hash is required")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash identity password: %w", err)
		}
	}

	return &Identity{
		email:         email,
		passwordHash:  hash,
		allowedDomain: strings.ToLower(strings.TrimPrefix(strings.TrimSpace(allowedDomain), "@")),
	}, nil
}

// Authenticate returns the normalized email on success.
func (i *Identity) Authenticate(email, password string) (string, error) {
	email = normalizeEmail(email)
	if !i.DomainAllowed(email) {
		return "", ErrDomainNotAllowed
	}
	if email != i.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(i.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return email, nil
}

func (i *Identity) DomainAllowed(email string) bool {
	if i.allowedDomain == "" {
		return true
	}
	return strings.HasSuffix(normalizeEmail(email), "@"+i.allowedDomain)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
