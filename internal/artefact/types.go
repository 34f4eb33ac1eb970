// Package artefact defines the shared data model for the diff engine:
// the server's declared file state and the typed change records the
// engine produces from it.
package artefact

import "encoding/json"

// Type represents the kind of artefact a file belongs to
type Type string

const (
	TypeCommand  Type = "command"
	TypeStandard Type = "standard"
	TypeSkill    Type = "skill"
)

// String returns the string representation of the type
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the type is recognized
func (t Type) IsValid() bool {
	switch t {
	case TypeCommand, TypeStandard, TypeSkill:
		return true
	default:
		return false
	}
}

// FileDescriptor is the server's declared state of one file belonging to
// one artefact. It is supplied fresh per diff run and never mutated.
type FileDescriptor struct {
	// Path is the file path relative to the sync root
	Path string `json:"path"`

	// Content is the textual (or already-decoded) content. Nil marks the
	// file as non-diffable; such files carry Sections instead.
	Content *string `json:"content,omitempty"`

	// Sections is opaque composite content excluded from diffing
	Sections json.RawMessage `json:"sections,omitempty"`

	// Owning artefact
	ArtefactType Type   `json:"artefactType,omitempty"`
	ArtefactName string `json:"artefactName,omitempty"`
	ArtefactID   string `json:"artefactId,omitempty"`
	SpaceID      string `json:"spaceId,omitempty"`

	// Skill attachment fields
	FileID      string `json:"fileId,omitempty"`
	Permissions string `json:"permissions,omitempty"`
	IsBase64    bool   `json:"isBase64,omitempty"`
}

// DiffType is the closed enumeration of change tags a Diff can carry
type DiffType string

const (
	DiffUpdateName            DiffType = "update-name"
	DiffUpdateDescription     DiffType = "update-description"
	DiffUpdateScope           DiffType = "update-scope"
	DiffUpdatePrompt          DiffType = "update-prompt"
	DiffUpdateMetadata        DiffType = "update-metadata"
	DiffUpdateFileContent     DiffType = "update-file-content"
	DiffUpdateFilePermissions DiffType = "update-file-permissions"
	DiffAddFile               DiffType = "add-file"
	DiffDeleteFile            DiffType = "delete-file"
	DiffAddRule               DiffType = "add-rule"
	DiffUpdateRule            DiffType = "update-rule"
	DiffDeleteRule            DiffType = "delete-rule"
)

// PlaceholderTargetID marks a rule-level target whose server-side identity
// is unresolved. Rule identity resolution belongs to the server.
const PlaceholderTargetID = "unresolved"

// Payload is the tag-dependent content of a Diff. Concrete shapes are
// ValueChange, RuleChange, RuleUpdate and FileChange; a diff never carries
// more than the fields its tag requires.
type Payload interface {
	payload()
}

// ValueChange is the payload for field-level updates
type ValueChange struct {
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

func (ValueChange) payload() {}

// RuleChange is the payload for structural rule add/delete
type RuleChange struct {
	TargetID string `json:"targetId"`
	Item     string `json:"item"`
}

func (RuleChange) payload() {}

// RuleUpdate is the payload for a rule edited in place
type RuleUpdate struct {
	TargetID string `json:"targetId"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

func (RuleUpdate) payload() {}

// FileChange is the payload for skill attachment add/delete. For deletes
// it embeds the server's original content, permissions and encoding flag
// so the delete can be executed without re-reading local state.
type FileChange struct {
	FileID      string `json:"fileId,omitempty"`
	Path        string `json:"path,omitempty"`
	Content     string `json:"content"`
	Permissions string `json:"permissions,omitempty"`
	IsBase64    bool   `json:"isBase64,omitempty"`
}

func (FileChange) payload() {}

// Diff is the engine's output unit: one typed change record for one file
type Diff struct {
	Path         string   `json:"path"`
	Type         DiffType `json:"type"`
	Payload      Payload  `json:"payload"`
	ArtefactName string   `json:"artefactName"`
	ArtefactType Type     `json:"artefactType"`
	ArtefactID   string   `json:"artefactId,omitempty"`
	SpaceID      string   `json:"spaceId,omitempty"`
}
