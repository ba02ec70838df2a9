package web

import "embed"

// Static embeds the browser frontend: pages, stylesheet, and the form
// validation/controller scripts.
//
//go:embed static
var Static embed.FS
