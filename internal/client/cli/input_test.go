package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "hello\n", "hello"},
		{"surrounding spaces trimmed", "  E1  \n", "E1"},
		{"eof after partial line", "no-newline", "no-newline"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Enter id", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Enter id")
		})
	}
}

func TestGetSimpleText_EmptyInputReturnsEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Enter id", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetSecret_FallsBackToLineReadWhenNotTerminal(t *testing.T) {
	// Under go test stdin is not a terminal, so GetSecret takes the
	// piped-input path.
	var out bytes.Buffer
	got, err := GetSecret(bufio.NewReader(strings.NewReader("tok-123\n")), "Paste your ID token", &out)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)
	assert.Contains(t, out.String(), "Paste your ID token")
}
