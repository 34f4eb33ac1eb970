package strategy

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/packvault/packvault/internal/artefact"
)

func skillManifest(name, desc, body string) string {
	return "---\nname: " + name + "\ndescription: " + desc + "\n---\n" + body
}

func TestSkillStrategySupports(t *testing.T) {
	s := &SkillStrategy{}
	if !s.Supports(artefact.FileDescriptor{ArtefactType: artefact.TypeSkill}) {
		t.Error("Supports(skill) = false, want true")
	}
	if s.Supports(artefact.FileDescriptor{ArtefactType: artefact.TypeCommand}) {
		t.Error("Supports(command) = true, want false")
	}
}

func TestSkillStrategyManifestDiffs(t *testing.T) {
	tests := []struct {
		name     string
		server   string
		local    string
		wantType artefact.DiffType
		wantOld  string
		wantNew  string
	}{
		{
			name:     "renamed skill",
			server:   skillManifest("skill-a", "Does things", "Prompt.\n"),
			local:    skillManifest("skill-b", "Does things", "Prompt.\n"),
			wantType: artefact.DiffUpdateName,
			wantOld:  "skill-a",
			wantNew:  "skill-b",
		},
		{
			name:     "reworded description",
			server:   skillManifest("skill-a", "Does things", "Prompt.\n"),
			local:    skillManifest("skill-a", "Does more things", "Prompt.\n"),
			wantType: artefact.DiffUpdateDescription,
			wantOld:  "Does things",
			wantNew:  "Does more things",
		},
		{
			name:     "edited prompt",
			server:   skillManifest("skill-a", "Does things", "Old prompt.\n"),
			local:    skillManifest("skill-a", "Does things", "New prompt.\n"),
			wantType: artefact.DiffUpdatePrompt,
			wantOld:  "Old prompt.\n",
			wantNew:  "New prompt.\n",
		},
		{
			name:     "changed metadata",
			server:   "---\nname: skill-a\nversion: \"1\"\n---\nPrompt.\n",
			local:    "---\nname: skill-a\nversion: \"2\"\n---\nPrompt.\n",
			wantType: artefact.DiffUpdateMetadata,
			wantOld:  `{"version":"1"}`,
			wantNew:  `{"version":"2"}`,
		},
	}

	s := &SkillStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseDir := t.TempDir()
			writeLocal(t, baseDir, "skills/demo/SKILL.md", tt.local)

			f := artefact.FileDescriptor{
				Path:         "skills/demo/SKILL.md",
				Content:      strPtr(tt.server),
				ArtefactType: artefact.TypeSkill,
				ArtefactName: "demo",
			}

			diffs, err := s.Diff(context.Background(), f, baseDir)
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}
			if len(diffs) != 1 {
				t.Fatalf("Diff() produced %d diffs, want 1: %v", len(diffs), diffs)
			}
			if diffs[0].Type != tt.wantType {
				t.Errorf("Type = %s, want %s", diffs[0].Type, tt.wantType)
			}
			vc := diffs[0].Payload.(artefact.ValueChange)
			if vc.OldValue != tt.wantOld || vc.NewValue != tt.wantNew {
				t.Errorf("payload = %+v, want %q -> %q", vc, tt.wantOld, tt.wantNew)
			}
		})
	}
}

func TestSkillStrategyManifestFallback(t *testing.T) {
	// Neither side parses: whole-body comparison.
	baseDir := t.TempDir()
	writeLocal(t, baseDir, "skills/demo/SKILL.md", "Raw local text\n")

	f := artefact.FileDescriptor{
		Path:         "skills/demo/SKILL.md",
		Content:      strPtr("Raw server text\n"),
		ArtefactType: artefact.TypeSkill,
	}

	s := &SkillStrategy{}
	diffs, err := s.Diff(context.Background(), f, baseDir)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if len(diffs) != 1 || diffs[0].Type != artefact.DiffUpdatePrompt {
		t.Fatalf("diffs = %v, want one whole-body update-prompt", diffs)
	}
	vc := diffs[0].Payload.(artefact.ValueChange)
	if vc.OldValue != "Raw server text\n" || vc.NewValue != "Raw local text\n" {
		t.Errorf("payload = %+v", vc)
	}
}

func TestSkillStrategyAttachmentDeleted(t *testing.T) {
	f := artefact.FileDescriptor{
		Path:         "skills/demo/helper.py",
		Content:      strPtr("print('hi')\n"),
		ArtefactType: artefact.TypeSkill,
		ArtefactName: "demo",
		FileID:       "file-123",
		Permissions:  "rwxr-xr-x",
	}

	s := &SkillStrategy{}
	diffs, err := s.Diff(context.Background(), f, t.TempDir())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if len(diffs) != 1 || diffs[0].Type != artefact.DiffDeleteFile {
		t.Fatalf("diffs = %v, want one delete-file", diffs)
	}

	fc := diffs[0].Payload.(artefact.FileChange)
	if fc.FileID != "file-123" {
		t.Errorf("FileID = %q, want file-123", fc.FileID)
	}
	if fc.Content != "print('hi')\n" || fc.Permissions != "rwxr-xr-x" {
		t.Errorf("server state not embedded: %+v", fc)
	}
}

func TestSkillStrategyAttachmentContentAndPermissions(t *testing.T) {
	baseDir := t.TempDir()
	writeLocal(t, baseDir, "skills/demo/helper.py", "print('changed')\n")
	if err := os.Chmod(filepath.Join(baseDir, "skills/demo/helper.py"), 0o600); err != nil {
		t.Fatal(err)
	}

	f := artefact.FileDescriptor{
		Path:         "skills/demo/helper.py",
		Content:      strPtr("print('hi')\n"),
		ArtefactType: artefact.TypeSkill,
		FileID:       "file-123",
		Permissions:  "rw-r--r--",
	}

	s := &SkillStrategy{}
	diffs, err := s.Diff(context.Background(), f, baseDir)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("diffs = %v, want content and permission updates", diffs)
	}

	if diffs[0].Type != artefact.DiffUpdateFileContent {
		t.Errorf("first diff = %s, want update-file-content", diffs[0].Type)
	}
	vc := diffs[0].Payload.(artefact.ValueChange)
	if vc.NewValue != "print('changed')\n" {
		t.Errorf("content payload = %+v", vc)
	}

	if diffs[1].Type != artefact.DiffUpdateFilePermissions {
		t.Errorf("second diff = %s, want update-file-permissions", diffs[1].Type)
	}
	pc := diffs[1].Payload.(artefact.ValueChange)
	if pc.OldValue != "rw-r--r--" || pc.NewValue != "rw-------" {
		t.Errorf("permission payload = %+v", pc)
	}
}

func TestSkillStrategyBinaryAttachmentUnchanged(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01}
	baseDir := t.TempDir()
	writeLocal(t, baseDir, "skills/demo/logo.png", string(raw))

	f := artefact.FileDescriptor{
		Path:         "skills/demo/logo.png",
		Content:      strPtr(base64.StdEncoding.EncodeToString(raw)),
		ArtefactType: artefact.TypeSkill,
		IsBase64:     true,
	}

	s := &SkillStrategy{}
	diffs, err := s.Diff(context.Background(), f, baseDir)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if len(diffs) != 0 {
		t.Errorf("diffs = %v, want none for identical binary content", diffs)
	}
}

func TestPermissionString(t *testing.T) {
	tests := []struct {
		mode os.FileMode
		want string
	}{
		{0o644, "rw-r--r--"},
		{0o755, "rwxr-xr-x"},
		{0o600, "rw-------"},
		{0o777, "rwxrwxrwx"},
		{0, "---------"},
	}

	for _, tt := range tests {
		if got := permissionString(tt.mode); got != tt.want {
			t.Errorf("permissionString(%o) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
