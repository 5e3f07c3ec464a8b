package mailer

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"
)

// Renderer renders text/HTML template pairs from a filesystem.
//
// For a template named "password_reset" it loads "password_reset.txt"
// (frontmatter + plain text body) and, when present, "password_reset.html"
// (HTML body fragment wrapped in a layout). Both variants are processed with
// text/template so data values pass through verbatim, without HTML escaping.
type Renderer struct {
	fs fs.FS

	// Caches hold parsed templates, not rendered output, so concurrent
	// renders with different data are safe.
	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*htmltemplate.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

// cachedTemplate holds a parsed template pair for reuse.
type cachedTemplate struct {
	metadata map[string]any
	text     *texttemplate.Template
	html     *texttemplate.Template // nil when no .html variant exists
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a new renderer with default config.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a new renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:            filesystem,
		templateDir:   opts.TemplateDir,
		layoutDir:     opts.LayoutDir,
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*htmltemplate.Template),
	}
}

// RenderResult contains the rendered bodies and extracted frontmatter metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render processes the template pair named by templateName.
// The HTML variant, when present, is wrapped in the given layout; the layout
// receives the rendered fragment as {{.Content}} and the frontmatter as
// {{.Metadata}}.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(templateName)
	if err != nil {
		return nil, err
	}

	var textBody bytes.Buffer
	if err := cached.text.Execute(&textBody, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute text template: %v", ErrRenderFailed, err)
	}

	result := &RenderResult{
		Metadata: cached.metadata,
		Text:     textBody.String(),
	}

	if cached.html == nil {
		return result, nil
	}

	var htmlBody bytes.Buffer
	if err := cached.html.Execute(&htmlBody, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute html template: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var finalHTML bytes.Buffer
	layoutData := map[string]any{
		"Content":  htmltemplate.HTML(htmlBody.String()),
		"Metadata": cached.metadata,
	}
	if err := layoutTmpl.Execute(&finalHTML, layoutData); err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	result.HTML = finalHTML.String()
	return result, nil
}

// getTemplate returns a cached template pair or parses and caches it.
func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	if cached, ok := r.templateCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	textContent, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s.txt: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(textContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.txt: %v", ErrRenderFailed, name, err)
	}

	textTmpl, err := texttemplate.New(name + ".txt").Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse text template: %v", ErrRenderFailed, err)
	}

	cached := &cachedTemplate{metadata: parsed.Metadata, text: textTmpl}

	htmlContent, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name+".html"))
	switch {
	case err == nil:
		htmlTmpl, err := texttemplate.New(name + ".html").Parse(string(htmlContent))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse html template: %v", ErrRenderFailed, err)
		}
		cached.html = htmlTmpl
	case errors.Is(err, fs.ErrNotExist):
		// Text-only template; the message goes out without an HTML part.
	default:
		return nil, fmt.Errorf("%w: %s.html: %v", ErrTemplateNotFound, name, err)
	}

	r.templateCache[name] = cached
	return cached, nil
}

// getLayout returns a cached layout template or parses and caches it.
func (r *Renderer) getLayout(name string) (*htmltemplate.Template, error) {
	r.mu.RLock()
	if cached, ok := r.layoutCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layoutTmpl, err := htmltemplate.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}

	r.layoutCache[name] = layoutTmpl
	return layoutTmpl, nil
}
