package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := execute(t, "generate", "--width", "6", "--height", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := execute(t, "generate", "--width", "6", "--height", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different mazes:\n%s\n%s", first, second)
	}

	lines := strings.Split(strings.TrimRight(first, "\n"), "\n")
	if len(lines) != 4*2+1 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0] != "+---+---+---+---+---+---+" {
		t.Errorf("top border = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "| S ") {
		t.Errorf("start mark missing: %q", lines[1])
	}
	if !strings.Contains(lines[7], " E |") {
		t.Errorf("exit missing: %q", lines[7])
	}
}

func TestGenerateCheck(t *testing.T) {
	out, err := execute(t, "generate", "--width", "9", "--height", "5", "--seed", "3", "--check")
	if err != nil {
		t.Fatalf("generate --check: %v", err)
	}
	if !strings.HasSuffix(out, "check: ok\n") {
		t.Errorf("missing check result:\n%s", out)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	if _, err := execute(t, "generate", "--width", "0", "--height", "3", "--check=false"); err == nil {
		t.Error("zero width should fail")
	}
}

func TestListShowsGames(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"maze", "chase"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := execute(t, "list", "--log-level", "loud"); err == nil {
		t.Error("unknown log level should fail")
	}
	// Restore for later tests
	if _, err := execute(t, "list", "--log-level", "warn"); err != nil {
		t.Fatalf("list: %v", err)
	}
}
