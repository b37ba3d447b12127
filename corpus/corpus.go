// Package corpus embeds the default command corpus.
package corpus

import "embed"

// FS holds platforms.jsonl and the commands/*.jsonl chunks.
//
//go:embed platforms.jsonl commands/*.jsonl
var FS embed.FS
