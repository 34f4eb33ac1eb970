package manifest

import (
	"path/filepath"
	"strings"
)

// Dialect identifies which agent rendering a standard file uses. Each
// dialect stores the scope under a different frontmatter key, and the
// plain dialect carries no frontmatter at all.
type Dialect string

const (
	DialectPlain    Dialect = "plain"
	DialectClaude   Dialect = "claude"
	DialectCursor   Dialect = "cursor"
	DialectContinue Dialect = "continue"
	DialectCopilot  Dialect = "copilot"
)

// scopeKeys maps each frontmatter-bearing dialect to its scope key
var scopeKeys = map[Dialect]string{
	DialectClaude:   "paths",
	DialectCursor:   "globs",
	DialectContinue: "globs",
	DialectCopilot:  "applyTo",
}

// ScopeKey returns the frontmatter key the dialect stores its scope
// under, or empty string for the plain dialect.
func (d Dialect) ScopeKey() string {
	return scopeKeys[d]
}

// DialectForPath selects the dialect from the file path shape.
func DialectForPath(path string) Dialect {
	path = filepath.ToSlash(path)
	base := filepath.Base(path)

	switch {
	case strings.HasSuffix(base, ".instructions.md"):
		return DialectCopilot
	case strings.HasSuffix(base, ".mdc"), strings.Contains(path, ".cursor/rules/"):
		return DialectCursor
	case strings.Contains(path, ".continue/rules/"):
		return DialectContinue
	case strings.Contains(path, ".claude/"):
		return DialectClaude
	}
	return DialectPlain
}
