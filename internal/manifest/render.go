package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Per-dialect frontmatter structs control YAML field ordering.

type claudeFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	AlwaysApply bool   `yaml:"alwaysApply"`
	Paths       string `yaml:"paths,omitempty"`
}

type cursorFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Globs       string `yaml:"globs,omitempty"`
}

type continueFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Globs       string `yaml:"globs,omitempty"`
}

type copilotFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	ApplyTo     string `yaml:"applyTo,omitempty"`
}

// RenderStandard serializes a standard into one of the supported
// dialects. Rendering then re-parsing recovers the name, description and
// scope exactly.
func RenderStandard(std *Standard, d Dialect) (string, error) {
	name := std.FrontmatterName
	if name == "" {
		name = std.Name
	}
	desc := std.FrontmatterDescription
	if desc == "" {
		desc = std.Description
	}

	if d == DialectPlain {
		return renderPlainBody(name, desc, std.Rules), nil
	}

	var fm interface{}
	switch d {
	case DialectClaude:
		fm = &claudeFrontmatter{Name: name, Description: desc, AlwaysApply: std.Scope == "", Paths: std.Scope}
	case DialectCursor:
		fm = &cursorFrontmatter{Name: name, Description: desc, Globs: std.Scope}
	case DialectContinue:
		fm = &continueFrontmatter{Name: name, Description: desc, Globs: std.Scope}
	case DialectCopilot:
		fm = &copilotFrontmatter{Name: name, Description: desc, ApplyTo: std.Scope}
	default:
		return "", fmt.Errorf("unsupported dialect: %s", d)
	}

	body := renderStructuredBody(name, desc, std.Rules)
	return serializeFrontmatter(fm, body)
}

func renderPlainBody(name, desc string, rules []string) string {
	var b strings.Builder
	b.WriteString("# " + name + "\n")
	if desc != "" {
		b.WriteString("\n" + desc + "\n")
	}
	if len(rules) > 0 {
		b.WriteString("\n## Rules\n\n")
		for _, rule := range rules {
			b.WriteString("- " + rule + "\n")
		}
	}
	return b.String()
}

func renderStructuredBody(name, desc string, rules []string) string {
	var b strings.Builder
	b.WriteString("## Standard: " + name + "\n")
	if desc != "" {
		b.WriteString("\n" + desc + "\n")
	}
	if len(rules) > 0 {
		b.WriteString("\n")
		for _, rule := range rules {
			b.WriteString("- " + rule + "\n")
		}
	}
	return b.String()
}

// serializeFrontmatter wraps a frontmatter value and body into one file
func serializeFrontmatter(fm interface{}, body string) (string, error) {
	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to serialize frontmatter: %w", err)
	}

	var result strings.Builder
	result.WriteString("---\n")
	result.Write(yamlBytes)
	result.WriteString("---\n")
	if body != "" {
		result.WriteString("\n")
		result.WriteString(body)
	}
	return result.String(), nil
}
