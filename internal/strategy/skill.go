package strategy

import (
	"context"
	"encoding/base64"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/packvault/packvault/internal/artefact"
	"github.com/packvault/packvault/internal/manifest"
)

// SkillStrategy diffs skill bundles, dispatching by filename: the
// SKILL.md manifest is compared field by field, every other file is a
// content+permission comparison.
type SkillStrategy struct{}

func (s *SkillStrategy) Supports(f artefact.FileDescriptor) bool {
	return f.ArtefactType == artefact.TypeSkill
}

func (s *SkillStrategy) Diff(ctx context.Context, f artefact.FileDescriptor, baseDir string) ([]artefact.Diff, error) {
	if filepath.Base(f.Path) == artefact.SkillManifestFilename {
		return s.diffManifest(f, baseDir), nil
	}
	return s.diffAttachment(f, baseDir), nil
}

// diffManifest compares the parsed manifests field by field in a fixed
// order: name, description, prompt, metadata. When either side does not
// parse it falls back to whole-body text diffing.
func (s *SkillStrategy) diffManifest(f artefact.FileDescriptor, baseDir string) []artefact.Diff {
	local, err := os.ReadFile(filepath.Join(baseDir, f.Path))
	if err != nil {
		return nil
	}

	server := manifest.ParseSkill(*f.Content)
	current := manifest.ParseSkill(string(local))
	if server == nil || current == nil {
		if *f.Content != string(local) {
			return []artefact.Diff{
				newDiff(f, artefact.DiffUpdatePrompt, artefact.ValueChange{OldValue: *f.Content, NewValue: string(local)}),
			}
		}
		return nil
	}

	var diffs []artefact.Diff
	if server.Name != current.Name {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateName, artefact.ValueChange{OldValue: server.Name, NewValue: current.Name}))
	}
	if server.Description != current.Description {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateDescription, artefact.ValueChange{OldValue: server.Description, NewValue: current.Description}))
	}
	if server.Body != current.Body {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdatePrompt, artefact.ValueChange{OldValue: server.Body, NewValue: current.Body}))
	}
	if server.MetadataJSON != current.MetadataJSON {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateMetadata, artefact.ValueChange{OldValue: server.MetadataJSON, NewValue: current.MetadataJSON}))
	}
	return diffs
}

// diffAttachment compares one non-manifest skill file. A missing local
// file becomes a delete record embedding the server's content,
// permissions and encoding, so the server-side delete needs no further
// local reads. Content and permission changes are independent; both may
// appear for the same file.
func (s *SkillStrategy) diffAttachment(f artefact.FileDescriptor, baseDir string) []artefact.Diff {
	fullPath := filepath.Join(baseDir, f.Path)

	localBytes, err := os.ReadFile(fullPath)
	if err != nil {
		return []artefact.Diff{
			newDiff(f, artefact.DiffDeleteFile, artefact.FileChange{
				FileID:      f.FileID,
				Content:     *f.Content,
				Permissions: f.Permissions,
				IsBase64:    f.IsBase64,
			}),
		}
	}

	var diffs []artefact.Diff

	localContent := string(localBytes)
	if f.IsBase64 {
		// Binary content is compared after re-encoding the freshly read
		// local bytes, so both sides are in the same representation.
		localContent = base64.StdEncoding.EncodeToString(localBytes)
	}
	if localContent != *f.Content {
		diffs = append(diffs, newDiff(f, artefact.DiffUpdateFileContent, artefact.ValueChange{OldValue: *f.Content, NewValue: localContent}))
	}

	if f.Permissions != "" {
		if info, statErr := os.Stat(fullPath); statErr == nil {
			localPerm := permissionString(info.Mode())
			if localPerm != f.Permissions {
				diffs = append(diffs, newDiff(f, artefact.DiffUpdateFilePermissions, artefact.ValueChange{OldValue: f.Permissions, NewValue: localPerm}))
			}
		}
	}

	return diffs
}

// permissionString renders mode&0o777 as the 9-character rwx triplet
func permissionString(mode fs.FileMode) string {
	const symbols = "rwxrwxrwx"
	perm := mode.Perm()
	buf := make([]byte, 9)
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i] = symbols[i]
		} else {
			buf[i] = '-'
		}
	}
	return string(buf)
}
