// Package manifest parses the serialized artefact dialects: skill
// manifests (SKILL.md) and standard files in their per-agent renderings.
//
// Parsers return nil on unparseable input instead of an error; the diff
// strategies decide what "unparseable" degrades to.
package manifest

import (
	"encoding/json"

	"github.com/packvault/packvault/internal/frontmatter"
)

// SkillManifest is the parsed form of a SKILL.md file. It is derived
// only, never persisted, and lives for the duration of one comparison.
type SkillManifest struct {
	Name        string
	Description string
	Body        string

	// MetadataJSON is every frontmatter key other than name/description,
	// serialized with lexicographically sorted keys. Two semantically
	// identical metadata blocks always produce the same string, so
	// comparison is plain string equality.
	MetadataJSON string
}

// ParseSkill parses raw SKILL.md content. It returns nil when no valid
// opening+closing frontmatter block is found, signalling the caller to
// fall back to whole-body text diffing.
func ParseSkill(content string) *SkillManifest {
	fm, body := frontmatter.Parse(content)
	if fm == nil {
		return nil
	}

	meta := make(map[string]interface{})
	for key, value := range fm {
		if key == "name" || key == "description" {
			continue
		}
		meta[key] = value
	}

	return &SkillManifest{
		Name:         stringValue(fm, "name"),
		Description:  stringValue(fm, "description"),
		Body:         body,
		MetadataJSON: canonicalJSON(meta),
	}
}

// canonicalJSON serializes metadata deterministically. encoding/json
// sorts map keys, which provides the lexicographic ordering.
func canonicalJSON(meta map[string]interface{}) string {
	data, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// stringValue extracts a string key, returning empty string when the key
// is absent or not a string. Never nil.
func stringValue(fm map[string]interface{}, key string) string {
	if v, ok := fm[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
