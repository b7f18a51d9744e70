package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/t14raptor/replify/repl"
	"github.com/t14raptor/replify/transform/toplevelawait"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unit.js")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	var out strings.Builder
	path := writeSource(t, "import * as ns from 'm';\nns.f();\n")
	if err := run(repl.New(repl.DefaultConfig()), path, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "let ns;\n" +
		"(async () => {\n" +
		"    ns = await import('m');\n" +
		"    return ns.f();\n" +
		"})();\n"
	if out.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunIllegalReturn(t *testing.T) {
	var out strings.Builder
	path := writeSource(t, "await x;\nreturn;\n")
	err := run(repl.New(repl.DefaultConfig()), path, &out)
	if !errors.Is(err, repl.ErrIllegalReturn) {
		t.Fatalf("err = %v; want ErrIllegalReturn", err)
	}
	if out.String() != "await x;\nreturn;\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run(repl.New(repl.DefaultConfig()), filepath.Join(t.TempDir(), "missing.js"), &strings.Builder{})
	if err == nil || !strings.HasPrefix(err.Error(), "read input: ") {
		t.Errorf("err = %v", err)
	}
}

func TestInteractiveLegalize(t *testing.T) {
	m := newInteractiveModel(repl.New(repl.DefaultConfig()))
	m.input.SetValue("await f();")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s returned no command")
	}
	msg, ok := cmd().(legalizedMsg)
	if !ok {
		t.Fatalf("command returned %T", cmd())
	}
	if msg.err != nil || msg.result.Outcome != toplevelawait.Wrapped {
		t.Fatalf("got %+v", msg)
	}

	m.Update(msg)
	if view := m.View(); !strings.Contains(view, "wrapped, 0 import(s)") {
		t.Errorf("view does not show the outcome:\n%s", view)
	}
}

func TestInteractiveQuit(t *testing.T) {
	m := newInteractiveModel(repl.New(repl.DefaultConfig()))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc does not quit")
	}
}
