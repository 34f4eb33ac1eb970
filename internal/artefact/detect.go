package artefact

import (
	"path/filepath"
	"strings"
)

// DetectType infers the artefact type from a file path shape. It is used
// when files come from a plain git remote rather than the PackVault API,
// where the server would declare the type explicitly.
func DetectType(path string) Type {
	base := filepath.Base(path)
	switch {
	case base == SkillManifestFilename:
		return TypeSkill
	case containsSegment(path, "skills") || containsSegment(path, "skill"):
		return TypeSkill
	case containsSegment(path, "commands") || containsSegment(path, "command"):
		return TypeCommand
	case strings.HasSuffix(base, ".instructions.md"):
		return TypeStandard
	case strings.HasSuffix(base, ".mdc"):
		return TypeStandard
	case containsSegment(path, "standards") || containsSegment(path, "rules"):
		return TypeStandard
	}
	return ""
}

// NameFromPath derives a display name for a detected artefact: the skill
// folder name for skills, the filename stem otherwise.
func NameFromPath(path string, t Type) string {
	if t == TypeSkill {
		dir := filepath.Dir(path)
		if dir != "." && dir != "/" {
			return filepath.Base(dir)
		}
	}
	base := filepath.Base(path)
	for ext := base; ext != ""; {
		ext = filepath.Ext(base)
		if ext == "" {
			break
		}
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

func containsSegment(path, segment string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == segment || part == "."+segment {
			return true
		}
	}
	return false
}
