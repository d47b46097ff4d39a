// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteFile creates a file with the given content under dir on fsys,
// creating parent directories as needed.
func WriteFile(t *testing.T, fsys afero.Fs, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755), "creating parent dirs for %s", path)
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644), "writing %s", path)
	return path
}

// ReadTree returns every regular file under root keyed by its
// slash-separated path relative to root.
func ReadTree(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err, "reading tree %s", root)
	return files
}

// ReadJSON decodes the JSON file at path into a generic map.
func ReadJSON(t *testing.T, fsys afero.Fs, path string) map[string]any {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err, "reading %s", path)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc), "decoding %s", path)
	return doc
}
