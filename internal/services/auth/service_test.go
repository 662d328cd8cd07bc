package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickchat/internal/services/auth"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := auth.New()

	err := svc.Register("user_", "Passw0rd!", "+27831234567", "John", "Doe")
	require.NoError(t, err)

	require.True(t, svc.Login("user_", "Passw0rd!"))
	assert.Equal(t, "Welcome John Doe, it is great to see you again.", svc.LoginStatus(true))

	sess := svc.Session()
	assert.Equal(t, "John", sess.FirstName)
	assert.Equal(t, "Doe", sess.LastName)
	assert.Equal(t, "+27831234567", sess.CellNumber)
}

func TestRegisterShortCircuitsOnFirstInvalidField(t *testing.T) {
	svc := auth.New()

	// Username and password are both bad; the username failure wins.
	err := svc.Register("user", "short", "071", "Jane", "Smith")
	assert.ErrorIs(t, err, auth.ErrInvalidUsername)

	err = svc.Register("test_u", "short", "071", "Jane", "Smith")
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)

	err = svc.Register("test_u", "Passw0rd1!", "0712345678", "Jane", "Smith")
	assert.ErrorIs(t, err, auth.ErrInvalidCellNumber)

	// Nothing was inserted along the way.
	assert.False(t, svc.Login("user", "short"))
	assert.False(t, svc.Login("test_u", "Passw0rd1!"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := auth.New()

	require.NoError(t, svc.Register("dup_", "Passw0rd!", "+27831234567", "A", "B"))
	err := svc.Register("dup_", "Other0ne!", "+27831234568", "C", "D")
	assert.ErrorIs(t, err, auth.ErrDuplicateUsername)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	svc := auth.New()
	require.NoError(t, svc.Register("test_", "TestPass1!", "+27721234567", "Test", "User"))

	assert.False(t, svc.Login("wrong_", "TestPass1!"))
	assert.False(t, svc.Login("test_", "WrongPass!"))
	assert.Equal(t, "Username or password incorrect, please try again.", svc.LoginStatus(false))

	// Establish a session, then fail: previous values must survive.
	require.True(t, svc.Login("test_", "TestPass1!"))
	assert.False(t, svc.Login("test_", "WrongPass!"))
	sess := svc.Session()
	assert.Equal(t, "Test", sess.FirstName)
	assert.Equal(t, "User", sess.LastName)
}

func TestLoginStatusWithoutSession(t *testing.T) {
	svc := auth.New()
	// Even a loggedIn=true claim yields the failure text when no session exists.
	assert.Equal(t, "Username or password incorrect, please try again.", svc.LoginStatus(true))
}

func TestLoginIsCaseSensitive(t *testing.T) {
	svc := auth.New()
	require.NoError(t, svc.Register("case_", "CasePass1!", "+27831234567", "C", "S"))
	assert.False(t, svc.Login("case_", "casepass1!"))
	assert.True(t, svc.Login("case_", "CasePass1!"))
}
