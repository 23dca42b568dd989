// Package assets embeds the bundled benchmark catalog and its sample result
// documents so the dashboard renders without any on-disk data. A results file
// supplied at runtime takes precedence over the bundled samples.
package assets

import "embed"

// FS holds benchmarks.yaml plus one sample result document per benchmark.
//
//go:embed *.yaml *.json
var FS embed.FS
