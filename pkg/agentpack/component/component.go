// Package component provides the component type model and path-based
// classification for agent bundle files. A component is a single unit of
// agent configuration (a skill, tool, memory item, or agent definition)
// identified by where its source file sits in the uploaded tree.
package component

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies the kind of component a file represents.
type Type int

const (
	// TypeSkill is a skill or command definition.
	TypeSkill Type = iota
	// TypeTool is an MCP tool or tool source file.
	TypeTool
	// TypeMemory is a memory or context file.
	TypeMemory
	// TypeAgent is an agent definition (markdown or Python).
	TypeAgent
	// TypeOther is the catch-all for files that are not components.
	TypeOther
)

// Type string constants.
const (
	typeSkill  = "skill"
	typeTool   = "tool"
	typeMemory = "memory"
	typeAgent  = "agent"
	typeOther  = "other"
)

// String returns the string representation of the component type.
func (t Type) String() string {
	switch t {
	case TypeSkill:
		return typeSkill
	case TypeTool:
		return typeTool
	case TypeMemory:
		return typeMemory
	case TypeAgent:
		return typeAgent
	case TypeOther:
		return typeOther
	default:
		return typeOther
	}
}

// Types lists every component type in display order.
func Types() []Type {
	return []Type{TypeSkill, TypeTool, TypeMemory, TypeAgent, TypeOther}
}

// ErrInvalidType indicates that the type string could not be parsed.
var ErrInvalidType = errors.New("invalid component type")

// ParseType parses a string into a Type.
// Valid values are "skill", "tool", "memory", "agent", and "other"
// (case-insensitive).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case typeSkill:
		return TypeSkill, nil
	case typeTool:
		return TypeTool, nil
	case typeMemory:
		return TypeMemory, nil
	case typeAgent:
		return TypeAgent, nil
	case typeOther:
		return TypeOther, nil
	default:
		return TypeOther, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}
