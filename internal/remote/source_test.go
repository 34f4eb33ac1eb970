package remote

import "testing"

func TestParseGitRemote(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GitRemote
		wantErr bool
	}{
		{
			name:  "shorthand",
			input: "acme/artefacts",
			want:  GitRemote{Owner: "acme", Repo: "artefacts"},
		},
		{
			name:  "shorthand with path",
			input: "acme/artefacts:teams/platform",
			want:  GitRemote{Owner: "acme", Repo: "artefacts", Path: "teams/platform"},
		},
		{
			name:  "shorthand with ref",
			input: "acme/artefacts@v2",
			want:  GitRemote{Owner: "acme", Repo: "artefacts", Ref: "v2"},
		},
		{
			name:  "shorthand with path and ref",
			input: "acme/artefacts:teams/platform@main",
			want:  GitRemote{Owner: "acme", Repo: "artefacts", Path: "teams/platform", Ref: "main"},
		},
		{
			name:  "plain github url",
			input: "https://github.com/acme/artefacts",
			want:  GitRemote{Owner: "acme", Repo: "artefacts"},
		},
		{
			name:  "github url with .git suffix",
			input: "https://github.com/acme/artefacts.git",
			want:  GitRemote{Owner: "acme", Repo: "artefacts"},
		},
		{
			name:  "github tree url with ref and subpath",
			input: "https://github.com/acme/artefacts/tree/main/teams/platform",
			want:  GitRemote{Owner: "acme", Repo: "artefacts", Ref: "main", Path: "teams/platform"},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a remote",
			input:   "just-a-name",
			wantErr: true,
		},
		{
			name:    "url without repo",
			input:   "https://github.com/acme",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGitRemote(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGitRemote(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGitRemote(%q) error = %v", tt.input, err)
			}
			if *got != tt.want {
				t.Errorf("ParseGitRemote(%q) = %+v, want %+v", tt.input, *got, tt.want)
			}
		})
	}
}
