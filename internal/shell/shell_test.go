package shell

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickchat/internal/logging"
	"quickchat/internal/services/auth"
	"quickchat/internal/services/message"
	"quickchat/internal/store"
)

// stubPasswords routes readSecret calls to a scripted list.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	restore := readPassword
	t.Cleanup(func() { readPassword = restore })
	i := 0
	readPassword = func(fd int) ([]byte, error) {
		require.Less(t, i, len(passwords), "unexpected password prompt")
		pw := passwords[i]
		i++
		return []byte(pw), nil
	}
}

func newTestShell(t *testing.T, script string) (*Shell, *message.Registry, *bytes.Buffer) {
	t.Helper()
	accounts := auth.New()
	registry := message.NewRegistry(
		store.NewMessageFileStore(t.TempDir()),
		logging.NewTextLogger(io.Discard, slog.LevelError),
	)
	var out bytes.Buffer
	sh := New(accounts, registry, strings.NewReader(script), &out, logging.NewTextLogger(io.Discard, slog.LevelError))
	return sh, registry, &out
}

func TestRunFullSession(t *testing.T) {
	stubPasswords(t, "Pa$$w0rd1", "Pa$$w0rd1")

	script := strings.Join([]string{
		// registration
		"John",
		"Doe",
		"john_",
		"+27712345678",
		// login
		"john_",
		// send one message
		"1",
		"1",
		"+27718693002",
		"Hi Mike, can you join us for dinner tonight",
		"1",
		// reports: longest sent, then back
		"3",
		"2",
		"6",
		// quit
		"4",
	}, "\n") + "\n"

	sh, registry, out := newTestShell(t, script)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "User registered successfully.")
	assert.Contains(t, text, "Welcome John Doe, it is great to see you again.")
	assert.Contains(t, text, "Welcome to QuickChat.")
	assert.Contains(t, text, "Message ID generated: ")
	assert.Contains(t, text, "Message successfully sent.")
	assert.Contains(t, text, ":1:HITONIGHT")
	assert.Contains(t, text, "Total messages sent during this session: 1")
	assert.Contains(t, text, "Longest Sent Message:")
	assert.Contains(t, text, "Exiting QuickChat. Goodbye!")

	assert.Equal(t, 1, registry.TotalSent())
	require.Len(t, registry.Sent(), 1)
	assert.Equal(t, "Hi Mike, can you join us for dinner tonight", registry.Sent()[0].Text)
}

func TestRunRepromptsUntilRegistrationSucceeds(t *testing.T) {
	// First attempt uses a bad username, second succeeds, then login fails
	// three times and the session ends.
	stubPasswords(t, "Pa$$w0rd1", "Pa$$w0rd1", "nope", "nope", "nope")

	script := strings.Join([]string{
		// first registration attempt: invalid username
		"John", "Doe", "john", "+27712345678",
		// second attempt
		"John", "Doe", "john_", "+27712345678",
		// three failed logins
		"john_",
		"john_",
		"john_",
	}, "\n") + "\n"

	sh, _, out := newTestShell(t, script)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "invalid username format")
	assert.Contains(t, text, "Registration failed. Please try again.")
	assert.Contains(t, text, "User registered successfully.")
	assert.Contains(t, text, "Username or password incorrect, please try again.")
	assert.Contains(t, text, "Too many failed login attempts. Exiting application.")
}

func TestStoreAndDeleteFlow(t *testing.T) {
	stubPasswords(t, "Pa$$w0rd1", "Pa$$w0rd1")

	script := strings.Join([]string{
		"Alice", "Smith", "a_user_", "+27821112222",
		"a_user_",
		// store one message
		"1",
		"1",
		"+27838884567",
		"Where are you? You are late!",
		"2",
		// reports: search by recipient, delete by hash, back
		"3",
		"4",
		"+27838884567",
		"5",
		"WILL-BE-REPLACED",
		"6",
		"4",
	}, "\n") + "\n"

	// The hash is deterministic given counter 0 and the ID prefix, but the ID
	// is random; drive the delete through the registry afterwards instead.
	sh, registry, out := newTestShell(t, script)
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Message successfully stored.")
	assert.Contains(t, text, "Message stored for later sending (JSON):")
	assert.Contains(t, text, `"isSent":false`)
	assert.Contains(t, text, "Status: Stored")
	assert.Contains(t, text, "No message found with hash: WILL-BE-REPLACED")

	require.Len(t, registry.Stored(), 1)
	stored := registry.Stored()[0]
	assert.Contains(t, stored.Hash, ":0:WHERELATE")

	got, err := registry.DeleteByHash(stored.Hash)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Empty(t, registry.Stored())
}
