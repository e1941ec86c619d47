package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	t.Run("reads one trimmed line", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("  0300123  \nrest"))

		got, err := GetSimpleText(r, "Enter phone", &out)
		require.NoError(t, err)
		assert.Equal(t, "0300123", got)
		assert.Contains(t, out.String(), "Enter phone")
	})

	t.Run("partial line before EOF is returned", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("no-newline"))

		got, err := GetSimpleText(r, "Enter phone", &out)
		require.NoError(t, err)
		assert.Equal(t, "no-newline", got)
	})

	t.Run("immediate EOF is an error", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(""))

		_, err := GetSimpleText(r, "Enter phone", &out)
		require.Error(t, err)
	})
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	t.Run("returns bytes from terminal", func(t *testing.T) {
		readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

		var out bytes.Buffer
		pw, err := GetPassword(&out)
		require.NoError(t, err)
		assert.Equal(t, []byte("s3cret"), pw)
		assert.Contains(t, out.String(), "Enter password")
	})

	t.Run("propagates terminal error", func(t *testing.T) {
		readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }

		var out bytes.Buffer
		_, err := GetPassword(&out)
		require.Error(t, err)
	})
}
