package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestGetSimpleTextTrimsLine(t *testing.T) {
	var out bytes.Buffer
	text, err := GetSimpleText(reader("  hello  "), "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Contains(t, out.String(), "Say something")
}

func TestPromptDefaultKeepsCurrentOnEmptyInput(t *testing.T) {
	var out bytes.Buffer

	value, err := promptDefault(reader(""), "Day", "Monday", &out)
	require.NoError(t, err)
	assert.Equal(t, "Monday", value)

	value, err = promptDefault(reader("Friday"), "Day", "Monday", &out)
	require.NoError(t, err)
	assert.Equal(t, "Friday", value)
}

func TestPromptIntKeepsCurrentOnGarbage(t *testing.T) {
	var out bytes.Buffer

	value, err := promptInt(reader("banana"), "Duration", 60, &out)
	require.NoError(t, err)
	assert.Equal(t, 60, value)

	value, err = promptInt(reader("45"), "Duration", 60, &out)
	require.NoError(t, err)
	assert.Equal(t, 45, value)
}

func TestPromptFloatParsesInput(t *testing.T) {
	var out bytes.Buffer

	value, err := promptFloat(reader("72.5"), "Weight", 70, &out)
	require.NoError(t, err)
	assert.Equal(t, 72.5, value)
}

func TestConfirmYesNo(t *testing.T) {
	var out bytes.Buffer

	assert.True(t, confirmYesNo(reader("y"), "Delete?", &out))
	assert.True(t, confirmYesNo(reader("YES"), "Delete?", &out))
	assert.False(t, confirmYesNo(reader("n"), "Delete?", &out))
	assert.False(t, confirmYesNo(reader(""), "Delete?", &out))
}

func TestGetPasswordUsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret1"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))
	assert.Contains(t, out.String(), "Enter password")
}
