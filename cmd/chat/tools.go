package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// The model can suggest shell tools by putting a command on its own
// line wrapped in single backticks. Only the tools below are honored;
// anything else in backticks is ignored.

const maxToolOutputLines = 40

// buildArgv maps a suggested tool invocation to a concrete argv, or
// nil if the tool is not allowed.
func buildArgv(command string) []string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "glob":
		if len(fields) != 2 {
			return nil
		}
		return []string{"find", ".", "-name", fields[1], "-not", "-path", "*/.*"}
	case "grep":
		if len(fields) < 2 {
			return nil
		}
		return []string{"grep", "-rn", "--", strings.Join(fields[1:], " "), "."}
	case "read":
		if len(fields) != 2 {
			return nil
		}
		return []string{"cat", "--", fields[1]}
	case "ls":
		if len(fields) == 1 {
			return []string{"ls", "-la"}
		}
		return []string{"ls", "-la", "--", fields[1]}
	}
	return nil
}

// ExtractToolCommands scans an assistant reply for backtick lines that
// invoke an allowed tool and returns them in order.
func ExtractToolCommands(reply string) []string {
	var commands []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 || !strings.HasPrefix(line, "`") || !strings.HasSuffix(line, "`") {
			continue
		}
		command := strings.Trim(line, "`")
		if strings.Contains(command, "`") {
			continue
		}
		if buildArgv(command) != nil {
			commands = append(commands, command)
		}
	}
	return commands
}

// RunTool executes a suggested command and returns its trimmed output.
// Output is capped so a runaway tool cannot flood the transcript.
func RunTool(ctx context.Context, command string) (string, error) {
	argv := buildArgv(command)
	if argv == nil {
		return "", fmt.Errorf("unknown tool command %q", command)
	}
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		if text == "" {
			return "", fmt.Errorf("running %q: %w", command, err)
		}
		return "", fmt.Errorf("running %q: %w: %s", command, err, firstLines(text, 3))
	}
	if text == "" {
		text = "(no output)"
	}
	return firstLines(text, maxToolOutputLines), nil
}

func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + fmt.Sprintf("\n... (%d more lines)", len(lines)-n)
}
