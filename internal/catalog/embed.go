package catalog

import "embed"

// templateFS embeds the bundled note command templates. Filenames double as
// command names, so entries must match the command naming rules.
//
//go:embed templates/*.md
var templateFS embed.FS
