package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noiriko/create-noiriko/internal/project"
)

// TurboConfig is the turbo.json task graph.
type TurboConfig struct {
	Schema string               `json:"$schema"`
	UI     string               `json:"ui"`
	Tasks  map[string]TurboTask `json:"tasks"`
}

// TurboTask configures a single turbo task.
type TurboTask struct {
	DependsOn  []string `json:"dependsOn,omitempty"`
	Inputs     []string `json:"inputs,omitempty"`
	Outputs    []string `json:"outputs,omitempty"`
	Cache      *bool    `json:"cache,omitempty"`
	Persistent bool     `json:"persistent,omitempty"`
}

// Turbo returns the turbo.json document. It is the same for every project.
func Turbo() TurboConfig {
	noCache := false
	return TurboConfig{
		Schema: "https://turbo.build/schema.json",
		UI:     "tui",
		Tasks: map[string]TurboTask{
			"build": {
				DependsOn: []string{"^build"},
				Inputs:    []string{"$TURBO_DEFAULT$", ".env*"},
				Outputs:   []string{".next/**", "!.next/cache/**"},
			},
			"lint": {
				DependsOn: []string{"^lint"},
			},
			"check-types": {
				DependsOn: []string{"^check-types"},
			},
			"dev": {
				Cache:      &noCache,
				Persistent: true,
			},
		},
	}
}

// PNPMWorkspace is the pnpm-workspace.yaml document.
type PNPMWorkspace struct {
	Packages []string `yaml:"packages"`
}

// Workspace returns the pnpm workspace file content, or ok=false when the
// package manager declares workspaces in package.json instead.
func Workspace(cfg project.Config) (doc []byte, ok bool, err error) {
	if cfg.PackageManager != project.PackageManagerPNPM {
		return nil, false, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(PNPMWorkspace{Packages: []string{"apps/*", "packages/*"}}); err != nil {
		return nil, false, fmt.Errorf("encoding pnpm workspace: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, false, fmt.Errorf("encoding pnpm workspace: %w", err)
	}
	return buf.Bytes(), true, nil
}
