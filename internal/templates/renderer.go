package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const templateSuffix = ".tmpl"

// Renderer turns an embedded bundle into files, substituting Data into
// .tmpl sources and copying everything else verbatim.
type Renderer struct {
	fsys fs.FS
	data Data
}

// NewRenderer creates a renderer over the embedded bundles.
func NewRenderer(data Data) *Renderer {
	return &Renderer{fsys: FS(), data: data}
}

// RenderFile renders a single template source and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderBundle renders every file below dir. Target paths are relative to
// dir with the .tmpl suffix removed, in lexical walk order.
func (r *Renderer) RenderBundle(dir string) ([]File, error) {
	var files []File

	err := fs.WalkDir(r.fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(r.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		target := strings.TrimPrefix(p, dir+"/")
		if strings.HasSuffix(target, templateSuffix) {
			content, err = r.RenderFile(p, content)
			if err != nil {
				return err
			}
			target = strings.TrimSuffix(target, templateSuffix)
		}

		files = append(files, File{Path: target, Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rendering bundle %s: %w", dir, err)
	}

	return files, nil
}

func bundleDir(parts ...string) string {
	return path.Join(parts...)
}
