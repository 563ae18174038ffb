// Package export renders a reconciliation summary in the supported output
// formats. Every monetary field is emitted as a decimal string, never a
// binary float.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/splitdue-dev/splitdue/internal/model"
)

// Renderer writes a Summary in one output format.
type Renderer interface {
	Render(w io.Writer, s model.Summary) error
	Format() string
	Ext() string
}

// Registry holds named renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds a renderer. Panics on duplicate format.
func (r *Registry) Register(rd Renderer) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.renderers[key]; ok {
		panic("duplicate renderer format: " + key)
	}
	r.renderers[key] = rd
}

// Get returns the renderer for format, or nil.
func (r *Registry) Get(format string) Renderer {
	return r.renderers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVRenderer{})
	r.Register(&JSONRenderer{})
	r.Register(&MarkdownRenderer{})
	r.Register(&XLSXRenderer{})
	r.Register(&PDFRenderer{})
	return r
}

// FileName builds the export file name for a source file base name.
func FileName(base, person, ext string) string {
	return fmt.Sprintf("%s.%s.summary.%s", base, person, ext)
}
