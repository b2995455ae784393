// Package static holds the developer test page served at /test.html.
package static

import "embed"

//go:embed test.html
var FS embed.FS
