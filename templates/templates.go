package templates

import "embed"

// FS holds the HTML templates rendered by the controllers
//
//go:embed *.html
var FS embed.FS
