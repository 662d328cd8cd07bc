package shell

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrimsWhitespace(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  hello world \n"))
	var out bytes.Buffer

	got, err := readLine(in, "say: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "say: ", out.String())
}

func TestReadLineReturnsPartialLineOnEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer

	got, err := readLine(in, "> ", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestReadIntRepromptsOnGarbage(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("abc\n\n42\n"))
	var out bytes.Buffer

	got, err := readInt(in, "n: ", &out)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Contains(t, out.String(), "Invalid input. Please enter a number.")
}

func TestReadSecretUsesSeam(t *testing.T) {
	restore := readPassword
	defer func() { readPassword = restore }()
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret!"), nil }

	var out bytes.Buffer
	got, err := readSecret("pw: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret!", got)
	assert.Contains(t, out.String(), "pw: ")
}
