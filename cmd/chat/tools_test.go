package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuildArgv(t *testing.T) {
	tests := []struct {
		command string
		want    []string
	}{
		{"glob *.go", []string{"find", ".", "-name", "*.go", "-not", "-path", "*/.*"}},
		{"grep TODO", []string{"grep", "-rn", "--", "TODO", "."}},
		{"grep two words", []string{"grep", "-rn", "--", "two words", "."}},
		{"read main.go", []string{"cat", "--", "main.go"}},
		{"ls", []string{"ls", "-la"}},
		{"ls cmd", []string{"ls", "-la", "--", "cmd"}},
		{"rm -rf /", nil},
		{"glob", nil},
		{"read a b", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := buildArgv(tt.command); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("buildArgv(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func TestExtractToolCommands(t *testing.T) {
	reply := "Let me look around.\n" +
		"`ls`\n" +
		"then search:\n" +
		"  `grep layout`  \n" +
		"`rm -rf /`\n" +
		"not a `command` inline\n" +
		"``\n"

	got := ExtractToolCommands(reply)
	want := []string{"ls", "grep layout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractToolCommandsNone(t *testing.T) {
	if got := ExtractToolCommands("plain text, no suggestions"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestRunToolRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello tool\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := RunTool(context.Background(), "read "+path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello tool" {
		t.Errorf("out = %q", out)
	}
}

func TestRunToolUnknown(t *testing.T) {
	if _, err := RunTool(context.Background(), "dd if=/dev/zero"); err == nil {
		t.Error("disallowed command should error")
	}
}

func TestRunToolMissingFile(t *testing.T) {
	_, err := RunTool(context.Background(), "read "+filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("missing file should error")
	}
}

func TestFirstLines(t *testing.T) {
	in := strings.Repeat("x\n", 10) + "x"
	out := firstLines(in, 3)
	if !strings.Contains(out, "more lines") {
		t.Errorf("expected truncation marker, got %q", out)
	}
	if got := firstLines("a\nb", 3); got != "a\nb" {
		t.Errorf("short input should pass through, got %q", got)
	}
}
