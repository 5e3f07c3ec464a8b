package notification

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFiles embed.FS

// templatesFS strips the "templates/" prefix so the renderer sees template
// names directly.
func templatesFS() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		// The embedded directory name is fixed at compile time.
		panic(err)
	}
	return sub
}
