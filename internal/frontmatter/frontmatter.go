// Package frontmatter splits YAML frontmatter from markdown content.
//
// The splitter is deliberately forgiving: malformed or unclosed
// frontmatter is defined as "no frontmatter" and the input is returned
// verbatim. It never returns an error.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Strip returns the content after the frontmatter block, with leading
// whitespace trimmed. Content with no opening delimiter, or with an
// unclosed block, is returned unchanged.
//
// The closing delimiter is found by scanning for the next "\n---" rather
// than parsing YAML line by line, so multi-line scalar values cannot
// produce false closings.
func Strip(text string) string {
	_, body, ok := split(text)
	if !ok {
		return text
	}
	return body
}

// Parse extracts the frontmatter keys and the body. The returned map is
// nil when no valid frontmatter block exists, including when the block
// is not parseable as YAML.
func Parse(text string) (map[string]interface{}, string) {
	raw, body, ok := split(text)
	if !ok {
		return nil, text
	}

	fm := make(map[string]interface{})
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, text
	}
	return fm, body
}

// split separates the raw frontmatter text from the body. ok is false
// when the input carries no complete frontmatter block.
func split(text string) (raw, body string, ok bool) {
	if !strings.HasPrefix(text, delimiter+"\n") {
		return "", "", false
	}

	rest := text[len(delimiter)+1:]
	idx := strings.Index(rest, "\n"+delimiter)
	if idx == -1 {
		return "", "", false
	}

	raw = rest[:idx]
	body = rest[idx+len(delimiter)+1:]
	return raw, strings.TrimLeft(body, " \t\r\n"), true
}
