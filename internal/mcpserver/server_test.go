package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"no path", errors.New("missing field http.scheme"), "missing field http.scheme"},
		{"absolute path", errors.New("open /home/user/specs/scheme.json: no such file or directory"), "open <path>: no such file or directory"},
		{"tmp path", errors.New("reading /tmp/x/y.yaml: input too large"), "reading <path>: input too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("open /root/secret.json: denied"))
	assert.Equal(t, "open <path>: denied", errorText(t, result))
}

func TestGroupAndSort(t *testing.T) {
	items := []string{"http", "apiKey", "http", "oauth2", "apiKey", "http"}
	groups := groupAndSort(items, func(s string) string { return s })
	assert.Equal(t, []groupCount{
		{Key: "http", Count: 3},
		{Key: "apiKey", Count: 2},
		{Key: "oauth2", Count: 1},
	}, groups)

	assert.Empty(t, groupAndSort([]string(nil), func(s string) string { return s }))
}
