// Package vcs initializes a git repository for a freshly created project.
package vcs

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/noiriko/create-noiriko/internal/output"
)

// InitialCommitMessage is the message of the first commit.
const InitialCommitMessage = "Initial commit from create-noiriko"

// Fallback identity used when no git user is configured.
const (
	fallbackName  = "create-noiriko"
	fallbackEmail = "create-noiriko@localhost"
)

// Init creates a repository in dir, stages every non-ignored file, and
// commits it. It returns the hash of the new commit.
func Init(dir, message string) (plumbing.Hash, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("initializing repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("opening worktree: %w", err)
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("reading .gitignore: %w", err)
	}
	wt.Excludes = append(wt.Excludes, patterns...)

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("staging files: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: Signature(time.Now()),
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("creating initial commit: %w", err)
	}

	output.Debug("git repository initialized", "dir", dir, "commit", hash.String())
	return hash, nil
}

// Signature returns the commit author from the global git configuration,
// filling any missing part from a fixed fallback identity.
func Signature(when time.Time) *object.Signature {
	sig := &object.Signature{Name: fallbackName, Email: fallbackEmail, When: when}

	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		output.Debug("no global git config, using fallback identity", "error", err)
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
