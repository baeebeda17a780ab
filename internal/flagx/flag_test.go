package flagx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-x", "other"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-c", "-v"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestPositionals(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		flagsWithValue []string
		want           []string
	}{
		{
			name:           "connstring and file around a valued flag",
			args:           []string{"user@host:22/dir", "-i", "id_rsa", "photo.png"},
			flagsWithValue: []string{"-i"},
			want:           []string{"user@host:22/dir", "photo.png"},
		},
		{
			name:           "dash is a positional",
			args:           []string{"user@host:22/dir", "-"},
			flagsWithValue: nil,
			want:           []string{"user@host:22/dir", "-"},
		},
		{
			name:           "equals form does not consume next arg",
			args:           []string{"-i=id_rsa", "file.txt"},
			flagsWithValue: []string{"-i"},
			want:           []string{"file.txt"},
		},
		{
			name:           "boolean flag keeps following positional",
			args:           []string{"-v", "file.txt"},
			flagsWithValue: nil,
			want:           []string{"file.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positionals(tt.args, tt.flagsWithValue))
		})
	}
}

func TestExpandArgsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.args")
	require.NoError(t, os.WriteFile(path, []byte("user:pw@example.com:22/srv/assets\n-i\nid_rsa\n\n"), 0o600))

	got, err := ExpandArgsFile([]string{"+" + path, "file.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user:pw@example.com:22/srv/assets", "-i", "id_rsa", "file.png"}, got)
}

func TestExpandArgsFile_MissingFile(t *testing.T) {
	_, err := ExpandArgsFile([]string{"+/does/not/exist.args"})
	require.Error(t, err)
}

func TestExpandArgsFile_BarePlus(t *testing.T) {
	got, err := ExpandArgsFile([]string{"+"})
	require.NoError(t, err)
	assert.Equal(t, []string{"+"}, got)
}

func TestExpandArgsFile_NoExpansionNeeded(t *testing.T) {
	got, err := ExpandArgsFile([]string{"a", "-b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "-b", "c"}, got)
}
