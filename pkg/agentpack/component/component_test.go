package component

import (
	"errors"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeSkill, "skill"},
		{TypeTool, "tool"},
		{TypeMemory, "memory"},
		{TypeAgent, "agent"},
		{TypeOther, "other"},
		{Type(99), "other"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{input: "skill", want: TypeSkill},
		{input: "TOOL", want: TypeTool},
		{input: "Memory", want: TypeMemory},
		{input: "agent", want: TypeAgent},
		{input: "other", want: TypeOther},
		{input: "widget", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidType) {
					t.Errorf("ParseType(%q) error = %v, want ErrInvalidType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypesRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		parsed, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q) unexpected error: %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("round trip %v -> %q -> %v", typ, typ.String(), parsed)
		}
	}
}
