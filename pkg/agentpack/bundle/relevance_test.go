package bundle

import "testing"

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "markdown", file: "greet.md", want: true},
		{name: "text", file: "notes.txt", want: true},
		{name: "python", file: "agent.py", want: true},
		{name: "typescript", file: "tool.ts", want: true},
		{name: "javascript", file: "tool.js", want: true},
		{name: "json", file: "mcp.json", want: true},
		{name: "yaml", file: "config.yaml", want: true},
		{name: "yml", file: "config.yml", want: true},
		{name: "uppercase extension", file: "README.MD", want: true},
		{name: "image", file: "logo.png", want: false},
		{name: "binary", file: "tool.exe", want: false},
		{name: "lockfile", file: "poetry.lock", want: false},
		{name: "no extension", file: "Makefile", want: false},
		{name: "empty", file: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relevant(tt.file); got != tt.want {
				t.Errorf("Relevant(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestRelevantExtensionsIsCopy(t *testing.T) {
	exts := RelevantExtensions()
	if len(exts) == 0 {
		t.Fatal("RelevantExtensions() returned no extensions")
	}
	exts[0] = ".exe"
	if Relevant("file.exe") {
		t.Error("mutating the returned slice changed the allow-list")
	}
}
