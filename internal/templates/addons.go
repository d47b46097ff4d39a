package templates

import (
	"fmt"

	"github.com/noiriko/create-noiriko/internal/project"
)

// Addon returns the files for one addon. Unknown tags yield no files.
func Addon(tag project.Addon, cfg project.Config) ([]File, error) {
	if _, ok := addonOptions[tag]; !ok {
		return nil, nil
	}
	return NewRenderer(NewData(cfg)).RenderBundle(bundleDir(addonBundle, tag.String()))
}

// AddonsFor resolves every selected addon independently and concatenates
// the results in selection order.
func AddonsFor(cfg project.Config) ([]File, error) {
	var files []File
	for _, tag := range cfg.Addons {
		addon, err := Addon(tag, cfg)
		if err != nil {
			return nil, fmt.Errorf("addon %s: %w", tag, err)
		}
		files = append(files, addon...)
	}
	return files, nil
}
