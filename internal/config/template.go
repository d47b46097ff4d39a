package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
)

// settingComments are attached to keys in the generated settings file.
var settingComments = map[string]string{
	"log":                "Logging output.",
	KeyLogTimestamps:     "Show timestamps in log lines. Env: NOIRIKO_LOG_TIMESTAMPS",
	KeyLogVerbose:        "Enable debug logging. Env: NOIRIKO_LOG_VERBOSE",
	"prompts":            "Interactive questionnaire.",
	KeyPromptsAccessible: "Screen-reader friendly prompts. Env: NOIRIKO_PROMPTS_ACCESSIBLE",
}

// DefaultTemplate renders DefaultSettings as commented YAML.
func DefaultTemplate() ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(DefaultSettings()); err != nil {
		return nil, fmt.Errorf("encoding default settings: %w", err)
	}
	doc.HeadComment = "create-noiriko settings.\nThese affect presentation only, never the generated project."
	annotate(&doc, "")

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("rendering default settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// annotate walks mapping nodes and sets head comments by dotted key path.
func annotate(node *yaml.Node, prefix string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		path := key.Value
		if prefix != "" {
			path = prefix + "." + path
		}
		if c, ok := settingComments[path]; ok {
			key.HeadComment = c
		}
		annotate(value, path)
	}
}

// WriteDefault writes the default settings file to path, creating parent
// directories. An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := ConfigFileExists(expanded)
	if err != nil {
		return err
	}
	if exists && !force {
		return oerrors.NewExistsError(expanded, "Use --force to overwrite")
	}

	content, err := DefaultTemplate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(expanded, content, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
