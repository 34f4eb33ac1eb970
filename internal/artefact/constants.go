package artefact

// File and directory name constants shared across the engine.
const (
	// SkillManifestFilename is the manifest file inside each skill folder
	SkillManifestFilename = "SKILL.md"

	// PackageManifestFilename is the package index file the server reports
	// alongside artefact files; it is never diffed
	PackageManifestFilename = "packvault.json"

	// NewFilePermissions is the permission string assigned to files
	// discovered locally. New files never probe the local mode on create.
	NewFilePermissions = "rw-r--r--"
)
