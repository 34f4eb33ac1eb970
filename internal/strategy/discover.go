package strategy

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/packvault/packvault/internal/artefact"
)

// DiscoverNewFiles scans local skill folders for files the server does
// not know about and emits one add-file record per finding. Only folders
// whose local SKILL.md counterpart exists are scanned; the walk descends
// into subdirectories, skips the manifest itself, skips paths already in
// the server file set, and skips unreadable entries.
func DiscoverNewFiles(ctx context.Context, files []artefact.FileDescriptor, skillFolders []string, baseDir string) []artefact.Diff {
	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[filepath.ToSlash(f.Path)] = true
	}

	var diffs []artefact.Diff
	for _, folder := range skillFolders {
		folder = filepath.ToSlash(filepath.Clean(folder))

		owner, ok := folderOwner(files, folder)
		if !ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(baseDir, folder, artefact.SkillManifestFilename)); err != nil {
			// No local counterpart: the skill was never pulled here
			continue
		}

		diffs = append(diffs, walkFolder(folder, "", baseDir, known, owner)...)
	}
	return diffs
}

// walkFolder collects add-file records for one skill folder subtree.
// rel is the path inside the folder, empty at the root.
func walkFolder(folder, rel, baseDir string, known map[string]bool, owner artefact.FileDescriptor) []artefact.Diff {
	dir := filepath.Join(baseDir, folder, rel)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var diffs []artefact.Diff
	for _, entry := range entries {
		entryRel := entry.Name()
		if rel != "" {
			entryRel = rel + "/" + entry.Name()
		}

		if entry.IsDir() {
			diffs = append(diffs, walkFolder(folder, entryRel, baseDir, known, owner)...)
			continue
		}
		if rel == "" && entry.Name() == artefact.SkillManifestFilename {
			continue
		}

		fullRel := folder + "/" + entryRel
		if known[fullRel] {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}

		isBinary := IsBinary(entry.Name(), content)
		text := string(content)
		if isBinary {
			text = base64.StdEncoding.EncodeToString(content)
		}

		diff := artefact.Diff{
			Path: fullRel,
			Type: artefact.DiffAddFile,
			Payload: artefact.FileChange{
				FileID:      uuid.NewString(),
				Path:        entryRel,
				Content:     text,
				Permissions: artefact.NewFilePermissions,
				IsBase64:    isBinary,
			},
			ArtefactName: owner.ArtefactName,
			ArtefactType: artefact.TypeSkill,
			ArtefactID:   owner.ArtefactID,
			SpaceID:      owner.SpaceID,
		}
		diffs = append(diffs, diff)
	}
	return diffs
}

// folderOwner finds the descriptor that identifies the skill owning a
// folder, preferring its manifest file.
func folderOwner(files []artefact.FileDescriptor, folder string) (artefact.FileDescriptor, bool) {
	prefix := folder + "/"
	var fallback artefact.FileDescriptor
	found := false

	for _, f := range files {
		path := filepath.ToSlash(f.Path)
		if path == prefix+artefact.SkillManifestFilename {
			return f, true
		}
		if !found && len(path) > len(prefix) && path[:len(prefix)] == prefix {
			fallback = f
			found = true
		}
	}
	return fallback, found
}
