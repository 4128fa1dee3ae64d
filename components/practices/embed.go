package practices

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the built-in page templates so hosts can reuse or
// extend them.
func TemplatesFS() fs.FS {
	return templateFiles
}
