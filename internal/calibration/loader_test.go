package calibration

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensors_calibration.yaml")

	content := `
base_link:
  lidar_front_link:
    x: 1.5
    y: 0.0
    z: 2.1
    roll: 0.0
    pitch: 0.0
    yaw: 3.14
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	root, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, root)

	assert.Equal(t, yaml.MappingNode, root.Kind)
	assert.Equal(t, "base_link", root.Content[0].Value)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	// Callers distinguish a missing file from a broken one.
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Path, "nope.yaml")
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [unclosed"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestParseRejectsNonMapping(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "empty document", input: "", reason: "empty"},
		{name: "null document", input: "~", reason: "empty"},
		{name: "sequence", input: "- a\n- b", reason: "mapping"},
		{name: "bare scalar", input: "hello", reason: "mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Contains(t, formatErr.Reason, tt.reason)
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := Parse([]byte(": : :"))
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Error(t, errors.Unwrap(parseErr))
}
