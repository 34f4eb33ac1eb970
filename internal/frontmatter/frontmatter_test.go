package frontmatter

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "frontmatter and body",
			content: "---\nname: test\n---\n\nBody content",
			want:    "Body content",
		},
		{
			name:    "no frontmatter",
			content: "# Just markdown\n\nNo frontmatter here.",
			want:    "# Just markdown\n\nNo frontmatter here.",
		},
		{
			name:    "unclosed frontmatter",
			content: "---\nname: test\nNo closing delimiter",
			want:    "---\nname: test\nNo closing delimiter",
		},
		{
			name:    "multi-line scalar value",
			content: "---\ndescription: |\n  line one\n  line two\n---\nBody",
			want:    "Body",
		},
		{
			name:    "delimiter not followed by newline",
			content: "---name: test---",
			want:    "---name: test---",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "body only whitespace",
			content: "---\nname: test\n---\n   \n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.content); got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   map[string]interface{}
		wantBody string
	}{
		{
			name:    "full frontmatter",
			content: "---\nname: test-skill\ndescription: A test skill\n---\n# Body\n",
			wantFM: map[string]interface{}{
				"name":        "test-skill",
				"description": "A test skill",
			},
			wantBody: "# Body\n",
		},
		{
			name:     "no frontmatter returns nil map",
			content:  "# Just a file",
			wantFM:   nil,
			wantBody: "# Just a file",
		},
		{
			name:     "malformed yaml returns nil map",
			content:  "---\n: : :\n\t- bad\n---\nBody",
			wantFM:   nil,
			wantBody: "---\n: : :\n\t- bad\n---\nBody",
		},
		{
			name:    "list values",
			content: "---\nglobs:\n  - \"*.go\"\n  - \"*.md\"\n---\nContent",
			wantFM: map[string]interface{}{
				"globs": []interface{}{"*.go", "*.md"},
			},
			wantBody: "Content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFM, gotBody := Parse(tt.content)
			if !reflect.DeepEqual(gotFM, tt.wantFM) {
				t.Errorf("Parse() fm = %v, want %v", gotFM, tt.wantFM)
			}
			if gotBody != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", gotBody, tt.wantBody)
			}
		})
	}
}

func TestStripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("strip is idempotent", prop.ForAll(
		func(key, value, body string) bool {
			content := "---\n" + key + ": " + value + "\n---\n" + body
			stripped := Strip(content)
			return Strip(stripped) == stripped
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("strip is the identity on content without an opening delimiter", prop.ForAll(
		func(body string) bool {
			return Strip("x"+body) == "x"+body
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
