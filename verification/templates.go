package verification

import (
	"embed"
	"io/fs"
)

// TemplateName is the mail template rendered for every request.
const TemplateName = "verification_code.md"

//go:embed templates
var templateFS embed.FS

// Templates returns the embedded mail templates rooted so that
// TemplateName and layouts/ are at the top level.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err) // the embed directive guarantees the directory exists
	}
	return sub
}
