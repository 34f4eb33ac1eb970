package manifest

import "testing"

func TestParseSkill(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *SkillManifest
		wantNil bool
	}{
		{
			name:    "full manifest",
			content: "---\nname: deploy-helper\ndescription: Automates deploys\nversion: \"1.2\"\n---\n# Deploy Helper\n\nInstructions here.\n",
			want: &SkillManifest{
				Name:         "deploy-helper",
				Description:  "Automates deploys",
				Body:         "# Deploy Helper\n\nInstructions here.\n",
				MetadataJSON: `{"version":"1.2"}`,
			},
		},
		{
			name:    "missing optional keys",
			content: "---\nname: minimal\n---\nBody",
			want: &SkillManifest{
				Name:         "minimal",
				Body:         "Body",
				MetadataJSON: `{}`,
			},
		},
		{
			name:    "non-string name treated as absent",
			content: "---\nname: 42\ndescription: numeric name\n---\nBody",
			want: &SkillManifest{
				Description:  "numeric name",
				Body:         "Body",
				MetadataJSON: `{}`,
			},
		},
		{
			name:    "no frontmatter",
			content: "# Just a markdown file\n",
			wantNil: true,
		},
		{
			name:    "unclosed frontmatter",
			content: "---\nname: broken\nBody without closing",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkill(tt.content)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseSkill() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("ParseSkill() = nil, want manifest")
			}
			if got.Name != tt.want.Name {
				t.Errorf("Name = %q, want %q", got.Name, tt.want.Name)
			}
			if got.Description != tt.want.Description {
				t.Errorf("Description = %q, want %q", got.Description, tt.want.Description)
			}
			if got.Body != tt.want.Body {
				t.Errorf("Body = %q, want %q", got.Body, tt.want.Body)
			}
			if got.MetadataJSON != tt.want.MetadataJSON {
				t.Errorf("MetadataJSON = %q, want %q", got.MetadataJSON, tt.want.MetadataJSON)
			}
		})
	}
}

func TestParseSkillMetadataDeterminism(t *testing.T) {
	a := ParseSkill("---\nname: s\nzeta: last\nalpha: first\nmiddle: between\n---\nBody")
	b := ParseSkill("---\nmiddle: between\nname: s\nalpha: first\nzeta: last\n---\nBody")

	if a == nil || b == nil {
		t.Fatal("expected both manifests to parse")
	}
	if a.MetadataJSON != b.MetadataJSON {
		t.Errorf("metadata serialization differs: %q vs %q", a.MetadataJSON, b.MetadataJSON)
	}
	if want := `{"alpha":"first","middle":"between","zeta":"last"}`; a.MetadataJSON != want {
		t.Errorf("MetadataJSON = %q, want %q", a.MetadataJSON, want)
	}
}
