package component

import "strings"

// Classify maps a file path to its component type.
// It is a pure, total function: every input string yields exactly one type,
// with TypeOther as the catch-all. Matching is case-insensitive and accepts
// both forward and backward slashes.
//
// Resolution is an ordered rule table evaluated top to bottom with
// first-match-wins semantics. The rule order is the contract: example
// payloads are excluded before any folder rule fires, and memory folders
// override the markdown skill heuristics.
func Classify(path string) Type {
	p := splitPath(path)
	for _, r := range rules {
		if r.match(p) {
			return r.typ
		}
	}
	return TypeOther
}

// RuleNames returns the names of the classification rules in evaluation
// order. Exposed so callers can report which precedence table is in effect.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// rule pairs a named predicate with the type it resolves to.
type rule struct {
	name  string
	typ   Type
	match func(pathParts) bool
}

// rules is the classification table. Order matters: the first matching rule
// decides the type.
var rules = []rule{
	{
		// Example payloads are never real components, regardless of
		// where they sit.
		name: "example-exclusion",
		typ:  TypeOther,
		match: func(p pathParts) bool {
			return p.hasDir("examples")
		},
	},
	{
		name: "module-marker",
		typ:  TypeOther,
		match: func(p pathParts) bool {
			return p.base == "__init__.py"
		},
	},
	{
		// Checked before the skill rule so markdown under a memory
		// folder is never mistaken for a skill.
		name: "memory-folder",
		typ:  TypeMemory,
		match: func(p pathParts) bool {
			return p.hasDir("memory") || p.hasDir("memories")
		},
	},
	{
		name: "skill-folder",
		typ:  TypeSkill,
		match: func(p pathParts) bool {
			return p.hasDir("commands") || p.hasDir("skills")
		},
	},
	{
		name: "agent-markdown",
		typ:  TypeAgent,
		match: func(p pathParts) bool {
			return p.hasDirRun(".claude", "agents") && p.ext == ".md"
		},
	},
	{
		name: "agent-source",
		typ:  TypeAgent,
		match: func(p pathParts) bool {
			return p.hasDir("agents") && p.ext == ".py" && strings.Contains(p.base, "agent")
		},
	},
	{
		// Utility code living alongside agent definitions is not
		// itself an agent.
		name: "agent-sibling",
		typ:  TypeOther,
		match: func(p pathParts) bool {
			return p.hasDir("agents") && p.ext == ".py"
		},
	},
	{
		name: "tool-folder",
		typ:  TypeTool,
		match: func(p pathParts) bool {
			return p.hasDir("tools") ||
				strings.Contains(p.path, "mcp.json") ||
				strings.Contains(p.path, "mcp_config.json")
		},
	},
	{
		name: "memory-blocklist",
		typ:  TypeOther,
		match: func(p pathParts) bool {
			return (p.ext == ".md" || p.ext == ".txt") && memoryBlocklist[p.base]
		},
	},
	{
		name: "freeform-memory",
		typ:  TypeMemory,
		match: func(p pathParts) bool {
			return p.ext == ".md" || p.ext == ".txt"
		},
	},
	{
		name: "freeform-agent",
		typ:  TypeAgent,
		match: func(p pathParts) bool {
			return p.ext == ".py" && strings.Contains(p.base, "agent")
		},
	},
	{
		// Library and utility code outside recognized folders is not
		// a component.
		name: "source-default",
		typ:  TypeOther,
		match: func(p pathParts) bool {
			return p.ext == ".py"
		},
	},
}

// memoryBlocklist lists filenames that look like memory files but are
// project boilerplate.
var memoryBlocklist = map[string]bool{
	"license.txt":      true,
	"readme.txt":       true,
	"requirements.txt": true,
	"changelog.txt":    true,
}

// pathParts is a pre-split, lowercased view of a path used by the rule
// predicates.
type pathParts struct {
	path string   // full path, lowercased, slash-normalized
	dirs []string // directory segments, excluding the filename
	base string   // final segment
	ext  string   // from the last dot in base, "" if none
}

// splitPath normalizes and decomposes a path for rule matching.
func splitPath(path string) pathParts {
	p := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	segments := strings.Split(p, "/")

	base := segments[len(segments)-1]
	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = base[i:]
	}

	return pathParts{
		path: p,
		dirs: segments[:len(segments)-1],
		base: base,
		ext:  ext,
	}
}

// hasDir reports whether the path contains name as a directory segment,
// at the root or anywhere deeper.
func (p pathParts) hasDir(name string) bool {
	for _, d := range p.dirs {
		if d == name {
			return true
		}
	}
	return false
}

// hasDirRun reports whether the path contains the given directory segments
// consecutively, such as ".claude" followed by "agents".
func (p pathParts) hasDirRun(first, second string) bool {
	for i := 0; i+1 < len(p.dirs); i++ {
		if p.dirs[i] == first && p.dirs[i+1] == second {
			return true
		}
	}
	return false
}
