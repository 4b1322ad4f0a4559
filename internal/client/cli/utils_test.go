package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepshare/prepshare/internal/client/models"
)

func selectionApp(input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := &App{
		out:    &out,
		reader: bufio.NewReader(strings.NewReader(input)),
		lastList: []models.Experience{
			{ID: "E1", Name: "Alice"},
			{ID: "E2", Name: "Bob"},
		},
	}
	return a, &out
}

func TestResolveExperienceID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		input   string
		want    string
		wantErr bool
	}{
		{"numeric index into last listing", []string{"2"}, "", "E2", false},
		{"raw id passed through", []string{"E7"}, "", "E7", false},
		{"index out of range", []string{"5"}, "", "", true},
		{"zero index rejected", []string{"0"}, "", "", true},
		{"too many arguments", []string{"1", "2"}, "", "", true},
		{"no argument prompts for one", nil, "1\n", "E1", false},
		{"prompted raw id", nil, "E9\n", "E9", false},
		{"prompted empty line rejected", nil, "\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := selectionApp(tt.input)
			got, err := a.resolveExperienceID(tt.args, "show")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveExperienceID_PromptNamesTheCommand(t *testing.T) {
	a, out := selectionApp("E1\n")
	_, err := a.resolveExperienceID(nil, "upvote")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "upvote")
}
