package templates

import "github.com/noiriko/create-noiriko/internal/project"

// Auth returns the files for an auth provider. None yields no files.
// Provider bundles are static and never depend on the project name.
func Auth(auth project.Auth) ([]File, error) {
	if auth == project.AuthNone {
		return nil, nil
	}
	if _, ok := authOptions[auth]; !ok {
		return nil, nil
	}
	return NewRenderer(Data{}).RenderBundle(bundleDir(authBundle, auth.String()))
}
