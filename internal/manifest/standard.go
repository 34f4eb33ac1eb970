package manifest

import (
	"strings"

	"github.com/packvault/packvault/internal/frontmatter"
)

// fullStandardLink marks the trailing "read more" line appended to
// rendered standards. It is never part of the description or rules.
const fullStandardLink = "Full standard is available"

// Standard is the parsed form of one standard file. Body-derived and
// frontmatter-derived name/description are kept as separate fields
// because different render targets treat different locations as
// canonical; comparison happens on whichever pair both sides populate.
type Standard struct {
	// Name and Description come from the body heading
	// ("# <name>" or "## Standard: <name>") and the text below it.
	Name        string
	Description string

	// FrontmatterName and FrontmatterDescription come from the
	// name/description frontmatter keys, when the dialect carries them.
	FrontmatterName        string
	FrontmatterDescription string

	// Scope is the dialect-specific file glob, empty for match-all.
	Scope string

	// Rules is every bullet line of the body, in order of appearance.
	Rules []string
}

// ParseStandard parses standard content, selecting the dialect from the
// file path shape. Returns nil when the content is unparseable; callers
// treat that as "skip this file silently".
func ParseStandard(path, content string) *Standard {
	return ParseStandardDialect(DialectForPath(path), content)
}

// ParseStandardDialect parses standard content in an explicit dialect.
func ParseStandardDialect(d Dialect, content string) *Standard {
	std := &Standard{}
	body := content

	if d != DialectPlain {
		if fm, b := frontmatter.Parse(content); fm != nil {
			body = b
			std.FrontmatterName = stringValue(fm, "name")
			std.FrontmatterDescription = stringValue(fm, "description")
			std.Scope = scopeValue(fm[d.ScopeKey()])
		}
	}

	parseStandardBody(std, body)

	// No heading and no frontmatter name means there is nothing to
	// identify the standard by.
	if std.Name == "" && std.FrontmatterName == "" {
		return nil
	}
	return std
}

// parseStandardBody extracts the heading name, the description below it
// and the bullet rules.
func parseStandardBody(std *Standard, body string) {
	lines := strings.Split(body, "\n")
	headingSeen := false
	descriptionDone := false
	var descLines []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !headingSeen {
			if name, ok := headingName(trimmed); ok {
				std.Name = name
				headingSeen = true
			}
			continue
		}

		if isBullet(trimmed) {
			rule := bulletText(trimmed)
			if rule != "" && !strings.Contains(rule, fullStandardLink) {
				std.Rules = append(std.Rules, rule)
			}
			continue
		}

		if descriptionDone {
			continue
		}
		if strings.HasPrefix(trimmed, "## ") {
			descriptionDone = true
			continue
		}
		if trimmed == "" || strings.Contains(trimmed, fullStandardLink) {
			continue
		}
		descLines = append(descLines, trimmed)
	}

	std.Description = strings.TrimSuffix(strings.Join(descLines, "\n"), ":")
}

// headingName recognizes the two heading conventions a standard body may
// carry: "## Standard: <name>" in frontmatter dialects and "# <name>" in
// the plain dialect.
func headingName(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, "## Standard:"); ok {
		return strings.TrimSpace(rest), true
	}
	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func bulletText(line string) string {
	return strings.TrimSpace(line[2:])
}

// scopeValue normalizes the dialect scope key: scalar string, YAML list,
// or a bracketed scalar list are all joined with ", ". The default-match
// value "**" normalizes to empty scope.
func scopeValue(v interface{}) string {
	var parts []string

	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			for _, p := range strings.Split(s[1:len(s)-1], ",") {
				parts = append(parts, strings.Trim(strings.TrimSpace(p), `"'`))
			}
		} else if s != "" {
			parts = append(parts, s)
		}
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
	}

	joined := strings.Join(parts, ", ")
	if joined == "**" {
		return ""
	}
	return joined
}
