package auth

import (
	"errors"
	"fmt"

	"quickchat/internal/domain"
	"quickchat/internal/validate"
)

var (
	// ErrInvalidUsername is returned when the username fails the format
	// contract: 2-7 characters, letters/digits/underscore, at least one
	// underscore, not starting with one.
	ErrInvalidUsername = errors.New(
		"invalid username format: must be 2-7 characters and include an underscore")

	// ErrInvalidPassword is returned when the password fails the complexity
	// contract: min 8 chars with a capital, a number and a special character.
	ErrInvalidPassword = errors.New(
		"invalid password format: must be min 8 chars, 1 capital, 1 number, 1 special char")

	// ErrInvalidCellNumber is returned when the cell number is not +27
	// followed by nine digits.
	ErrInvalidCellNumber = errors.New(
		"invalid cell phone number format: must start with +27 and be 12 digits total")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Service is the in-memory credential store plus the session state of the
// last successful login. It assumes a single caller; see the app wiring.
type Service struct {
	accounts map[string]domain.Account
	session  domain.Session
}

// New returns an empty credential store.
func New() *Service {
	return &Service{accounts: make(map[string]domain.Account)}
}

// Register validates the three credential formats in order (username, then
// password, then cell number), short-circuiting on the first failure, then
// rejects duplicate usernames. The account map is mutated only on full
// success.
func (s *Service) Register(username, password, cellNumber, firstName, lastName string) error {
	if !validate.Username(username) {
		return ErrInvalidUsername
	}
	if !validate.Password(password) {
		return ErrInvalidPassword
	}
	if !validate.CellNumber(cellNumber) {
		return ErrInvalidCellNumber
	}
	if _, exists := s.accounts[username]; exists {
		return ErrDuplicateUsername
	}
	s.accounts[username] = domain.Account{
		Username:   username,
		Password:   password,
		CellNumber: cellNumber,
		FirstName:  firstName,
		LastName:   lastName,
	}
	return nil
}

// Login succeeds iff the username exists and the stored password matches the
// supplied one exactly. Passwords are compared in plaintext; a known
// weakness of this design, kept because the comparison semantics are
// observable behavior. A failed attempt leaves the previous session values
// untouched.
func (s *Service) Login(username, password string) bool {
	acc, ok := s.accounts[username]
	if !ok || acc.Password != password {
		return false
	}
	s.session = domain.Session{
		FirstName:  acc.FirstName,
		LastName:   acc.LastName,
		CellNumber: acc.CellNumber,
	}
	return true
}

// LoginStatus renders the status line for a login attempt. The welcome text
// is shown only when the attempt succeeded and a session exists.
func (s *Service) LoginStatus(loggedIn bool) string {
	if loggedIn && s.session.Active() {
		return fmt.Sprintf("Welcome %s %s, it is great to see you again.",
			s.session.FirstName, s.session.LastName)
	}
	return "Username or password incorrect, please try again."
}

// Session returns a copy of the current session values.
func (s *Service) Session() domain.Session {
	return s.session
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
