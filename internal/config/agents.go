package config

import (
	"path/filepath"
	"strings"
)

// Agent represents a supported AI coding agent rendering target
type Agent string

const (
	AgentClaude   Agent = "claude"
	AgentCursor   Agent = "cursor"
	AgentContinue Agent = "continue"
	AgentCopilot  Agent = "copilot"
)

// AgentConfig maps an agent to its on-disk layout conventions. The
// server renders the same artefacts into different file shapes per
// agent; these paths tell the diff engine where those renderings live.
type AgentConfig struct {
	Name         Agent
	DisplayName  string
	StandardsDir string
	CommandsDir  string
	SkillsDir    string
}

// ContainsPath reports whether a path relative to the sync root falls
// under one of the agent's artefact directories. Used to restrict a
// plain git source to the files rendered for one agent; the PackVault
// server applies the same filter server-side.
func (a AgentConfig) ContainsPath(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, dir := range []string{a.StandardsDir, a.CommandsDir, a.SkillsDir} {
		if strings.HasPrefix(rel, dir+"/") {
			return true
		}
	}
	return false
}

// KnownAgents returns all supported agent configurations
func KnownAgents() []AgentConfig {
	return []AgentConfig{
		{
			Name:         AgentClaude,
			DisplayName:  "Claude Code",
			StandardsDir: ".claude/standards",
			CommandsDir:  ".claude/commands",
			SkillsDir:    ".claude/skills",
		},
		{
			Name:         AgentCursor,
			DisplayName:  "Cursor",
			StandardsDir: ".cursor/rules",
			CommandsDir:  ".cursor/rules",
			SkillsDir:    ".cursor/rules",
		},
		{
			Name:         AgentContinue,
			DisplayName:  "Continue",
			StandardsDir: ".continue/rules",
			CommandsDir:  ".continue/prompts",
			SkillsDir:    ".continue/rules",
		},
		{
			Name:         AgentCopilot,
			DisplayName:  "GitHub Copilot",
			StandardsDir: ".github/instructions",
			CommandsDir:  ".github/prompts",
			SkillsDir:    ".github/skills",
		},
	}
}

// AgentByName looks up an agent configuration by name
func AgentByName(name string) (AgentConfig, bool) {
	for _, a := range KnownAgents() {
		if string(a.Name) == name {
			return a, true
		}
	}
	return AgentConfig{}, false
}
