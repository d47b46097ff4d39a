// Package templates provides the embedded project file bundles and the
// resolvers that select and render them for a project configuration.
package templates

import (
	"embed"
	"io/fs"
)

// bundleFS holds every bundle under files/<bundle>/, mirroring target paths.
// The all: prefix keeps dotfiles such as .gitignore and .env.example.
//
//go:embed all:files
var bundleFS embed.FS

const filesRoot = "files"

// Bundle directories relative to filesRoot.
const (
	baseBundle     = "base"
	metaBundle     = "meta"
	authBundle     = "auth"
	databaseBundle = "database"
	addonBundle    = "addons"
)

// FS returns the embedded bundle tree rooted at the bundles directory.
func FS() fs.FS {
	sub, err := fs.Sub(bundleFS, filesRoot)
	if err != nil {
		// fs.Sub only fails on an invalid path, and filesRoot is a constant.
		panic(err)
	}
	return sub
}
