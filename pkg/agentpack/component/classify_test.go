package component

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Type
	}{
		// Example exclusion beats every other rule.
		{name: "example under skills", path: "skills/examples/foo.md", want: TypeOther},
		{name: "example under commands", path: ".claude/commands/examples/demo.md", want: TypeOther},
		{name: "example at root", path: "examples/agent.py", want: TypeOther},
		{name: "examples as filename is not a segment", path: "skills/examples", want: TypeSkill},

		// Module markers are never components.
		{name: "init marker", path: "pkg/__init__.py", want: TypeOther},
		{name: "init marker case-insensitive", path: "pkg/__INIT__.PY", want: TypeOther},

		// Memory folders override everything below them.
		{name: "memory folder markdown", path: "memory/foo.md", want: TypeMemory},
		{name: "memories folder", path: "my/memories/context.txt", want: TypeMemory},
		{name: "memory folder python", path: "memory/helper.py", want: TypeMemory},

		// Skill folders.
		{name: "skills folder", path: "skills/greet.md", want: TypeSkill},
		{name: "nested claude commands", path: ".claude/commands/review.md", want: TypeSkill},
		{name: "commands at root", path: "commands/deploy.py", want: TypeSkill},
		{name: "skills nested script", path: "my-agent/skills/loader.js", want: TypeSkill},

		// Agent definitions, markdown variant.
		{name: "claude agents markdown", path: ".claude/agents/reviewer.md", want: TypeAgent},
		{name: "claude agents deep", path: "project/.claude/agents/helper.md", want: TypeAgent},

		// Agent definitions, source variant.
		{name: "agent script in agents", path: "agents/my_agent.py", want: TypeAgent},
		{name: "agent utils in agents", path: "agents/agent_utils.py", want: TypeAgent},
		{name: "agent helper name", path: "agents/my_agent_helper.py", want: TypeAgent},
		{name: "non-agent in agents", path: "agents/helpers.py", want: TypeOther},
		{name: "markdown in plain agents folder", path: "agents/readme-notes.md", want: TypeMemory},

		// Tool folders and MCP config.
		{name: "tools folder", path: "tools/fetcher.py", want: TypeTool},
		{name: "claude tools", path: ".claude/tools/search.ts", want: TypeTool},
		{name: "mcp config", path: "mcp.json", want: TypeTool},
		{name: "mcp config nested", path: "config/mcp_config.json", want: TypeTool},

		// Freeform memory with blocklist.
		{name: "plain markdown", path: "CLAUDE.md", want: TypeMemory},
		{name: "notes text", path: "notes.txt", want: TypeMemory},
		{name: "readme blocked", path: "readme.txt", want: TypeOther},
		{name: "readme blocked uppercase", path: "README.txt", want: TypeOther},
		{name: "license blocked", path: "docs/LICENSE.txt", want: TypeOther},
		{name: "requirements blocked", path: "requirements.txt", want: TypeOther},
		{name: "changelog blocked", path: "CHANGELOG.txt", want: TypeOther},
		{name: "readme markdown is memory", path: "README.md", want: TypeMemory},

		// Freeform agent scripts.
		{name: "root agent script", path: "my_agent_helper.py", want: TypeAgent},
		{name: "agent script anywhere", path: "src/hr-agent.py", want: TypeAgent},

		// Source-code default and fallback.
		{name: "plain python", path: "utils.py", want: TypeOther},
		{name: "json config", path: "settings.json", want: TypeOther},
		{name: "typescript outside folders", path: "index.ts", want: TypeOther},
		{name: "yaml outside folders", path: "ci.yaml", want: TypeOther},
		{name: "no extension", path: "Makefile", want: TypeOther},
		{name: "empty-ish path", path: ".", want: TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyBackslashPaths(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{path: `skills\greet.md`, want: TypeSkill},
		{path: `memory\facts.txt`, want: TypeMemory},
		{path: `agents\helpers.py`, want: TypeOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every input, however degenerate, resolves to one of the five types.
	inputs := []string{"", "/", "//", "...", "a/b/c/d/e", "\\", "examples", ".py"}
	for _, in := range inputs {
		got := Classify(in)
		switch got {
		case TypeSkill, TypeTool, TypeMemory, TypeAgent, TypeOther:
		default:
			t.Errorf("Classify(%q) = %v, not an enumerated type", in, got)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	paths := []string{"skills/a.md", "memory/b.txt", "agents/c_agent.py", "x.py"}
	for _, p := range paths {
		first := Classify(p)
		for i := 0; i < 3; i++ {
			if got := Classify(p); got != first {
				t.Errorf("Classify(%q) changed between calls: %v then %v", p, first, got)
			}
		}
	}
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	if len(names) == 0 {
		t.Fatal("RuleNames() returned no rules")
	}
	if names[0] != "example-exclusion" {
		t.Errorf("first rule = %q, want example-exclusion", names[0])
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate rule name %q", n)
		}
		seen[n] = true
	}
}
