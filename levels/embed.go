// Package levels embeds the shipped level files so the game runs without any
// files on disk. The loader still prefers on-disk copies so levels can be
// edited (and hot-reloaded) during development.
package levels

import "embed"

//go:embed *.json
var FS embed.FS

// Names lists the embedded levels in play order.
var Names = []string{"level01.json", "level02.json"}
