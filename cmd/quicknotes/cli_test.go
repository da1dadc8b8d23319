// ABOUTME: End-to-end tests for quicknotes CLI commands.
// ABOUTME: Runs the root command in-process against file-backed stores.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

type env struct {
	t      *testing.T
	config string
	args   []string
}

func newEnv(t *testing.T, backend string) *env {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "notes.db")
	if backend == "badger" {
		dbPath = filepath.Join(dir, "badger")
	}
	return &env{
		t:      t,
		config: filepath.Join(dir, "config.yaml"),
		args:   []string{"--backend", backend, "--db", dbPath},
	}
}

func (e *env) run(stdin string, args ...string) (string, error) {
	e.t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))

	full := append([]string{"--config", e.config}, e.args...)
	rootCmd.SetArgs(append(full, args...))

	_, err := rootCmd.ExecuteC()
	if err != nil {
		_ = closeStore()
	}
	return out.String(), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run("", args...)
	if err != nil {
		e.t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

// createdID pulls the short id out of a "Created note <id>" line.
func createdID(t *testing.T, out string) string {
	t.Helper()
	_, after, ok := strings.Cut(out, "Created note ")
	if !ok {
		t.Fatalf("expected 'Created note' in output: %s", out)
	}
	return strings.TrimSpace(after)
}

func TestAddListShowDelete(t *testing.T) {
	for _, backend := range []string{"sqlite", "badger"} {
		t.Run(backend, func(t *testing.T) {
			e := newEnv(t, backend)

			id := createdID(t, e.mustRun("add", "Test Note", "--content", "Test content here", "--color", "blue"))
			if len(id) != 6 {
				t.Fatalf("expected 6 character id, got %q", id)
			}

			out := e.mustRun("list")
			if !strings.Contains(out, "Test Note") || !strings.Contains(out, id) {
				t.Errorf("expected note in list: %s", out)
			}

			out = e.mustRun("show", id)
			if !strings.Contains(out, "Test content") {
				t.Errorf("expected 'Test content' in show: %s", out)
			}
			if !strings.Contains(out, "Blue") {
				t.Errorf("expected color in show: %s", out)
			}

			out = e.mustRun("rm", id, "--force")
			if !strings.Contains(out, "Deleted note") {
				t.Errorf("expected 'Deleted note' in output: %s", out)
			}

			out = e.mustRun("list")
			if !strings.Contains(out, "No notes yet") {
				t.Errorf("expected empty board after delete: %s", out)
			}
		})
	}
}

func TestListEmptyBoard(t *testing.T) {
	e := newEnv(t, "sqlite")

	out := e.mustRun("list")

	if !strings.Contains(out, "No notes yet. Create your first note with 'quicknotes add'.") {
		t.Errorf("expected empty message: %s", out)
	}
}

func TestPinMovesNoteToPinnedSection(t *testing.T) {
	e := newEnv(t, "sqlite")
	first := createdID(t, e.mustRun("add", "First"))
	e.mustRun("add", "Second")

	out := e.mustRun("pin", first)
	if !strings.Contains(out, "Pinned note "+first) {
		t.Errorf("expected pin confirmation: %s", out)
	}

	out = e.mustRun("list")
	pinned := strings.Index(out, "Pinned Notes")
	other := strings.Index(out, "Other Notes")
	if pinned < 0 || other < 0 {
		t.Fatalf("expected both sections: %s", out)
	}
	if idx := strings.Index(out, "First"); idx < pinned || idx > other {
		t.Errorf("expected First in pinned section: %s", out)
	}
	if idx := strings.Index(out, "Second"); idx < other {
		t.Errorf("expected Second in other section: %s", out)
	}

	out = e.mustRun("pin", first)
	if !strings.Contains(out, "Unpinned note "+first) {
		t.Errorf("expected unpin confirmation: %s", out)
	}
}

func TestNewestNoteListedFirst(t *testing.T) {
	e := newEnv(t, "sqlite")
	e.mustRun("add", "Older")
	e.mustRun("add", "Newer")

	out := e.mustRun("list")

	if strings.Index(out, "Newer") > strings.Index(out, "Older") {
		t.Errorf("expected newest first: %s", out)
	}
}

func TestAddContentOnlyShowsUntitled(t *testing.T) {
	e := newEnv(t, "sqlite")
	e.mustRun("add", "--content", "no title here")

	out := e.mustRun("list")

	if !strings.Contains(out, "Untitled") {
		t.Errorf("expected Untitled placeholder: %s", out)
	}
}

func TestAddRejectsBlankAndBadColor(t *testing.T) {
	e := newEnv(t, "sqlite")

	if _, err := e.run("", "add", "   ", "--content", "  "); err == nil {
		t.Error("expected error for blank note")
	}
	if _, err := e.run("", "add", "Title", "--color", "teal"); err == nil {
		t.Error("expected error for unknown color")
	}

	out := e.mustRun("list")
	if !strings.Contains(out, "No notes yet") {
		t.Errorf("expected nothing stored: %s", out)
	}
}

func TestAddFromFile(t *testing.T) {
	e := newEnv(t, "sqlite")
	path := filepath.Join(t.TempDir(), "body.md")
	if err := os.WriteFile(path, []byte("from a file"), 0600); err != nil {
		t.Fatal(err)
	}

	id := createdID(t, e.mustRun("add", "Filed", "--file", path))

	out := e.mustRun("show", id)
	if !strings.Contains(out, "from a file") {
		t.Errorf("expected file content: %s", out)
	}
}

func TestEditWithFlags(t *testing.T) {
	e := newEnv(t, "sqlite")
	id := createdID(t, e.mustRun("add", "Draft", "--content", "keep me"))

	out := e.mustRun("edit", id, "--title", "Final", "--color", "green")
	if !strings.Contains(out, "Updated note "+id) {
		t.Errorf("expected update confirmation: %s", out)
	}

	out = e.mustRun("show", id)
	for _, want := range []string{"Final", "Green", "keep me"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in show: %s", want, out)
		}
	}
}

func TestRmConfirmation(t *testing.T) {
	e := newEnv(t, "sqlite")
	id := createdID(t, e.mustRun("add", "Precious"))

	out, err := e.run("n\n", "rm", id)
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(out, "Cancelled.") {
		t.Errorf("expected cancellation: %s", out)
	}

	out, err = e.run("y\n", "rm", id)
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(out, "Deleted note") {
		t.Errorf("expected deletion: %s", out)
	}
}

func TestUnknownPrefix(t *testing.T) {
	e := newEnv(t, "sqlite")

	if _, err := e.run("", "show", "abcdef"); err == nil {
		t.Error("expected error for unknown id")
	}
	if _, err := e.run("", "pin", "abc"); err == nil {
		t.Error("expected error for short prefix")
	}
}

func TestListFilterByColor(t *testing.T) {
	e := newEnv(t, "sqlite")
	e.mustRun("add", "Leaf", "--color", "green")
	e.mustRun("add", "Sky", "--color", "blue")

	out := e.mustRun("list", "--color", "green")

	if !strings.Contains(out, "Leaf") || strings.Contains(out, "Sky") {
		t.Errorf("expected only green notes: %s", out)
	}
}

func TestColorsCommand(t *testing.T) {
	e := newEnv(t, "sqlite")

	out := e.mustRun("colors")

	for _, name := range []string{"yellow", "green", "pink", "blue", "purple", "orange"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in palette: %s", name, out)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	e := newEnv(t, "sqlite")

	out := e.mustRun("config", "init")
	if !strings.Contains(out, "Wrote config") {
		t.Errorf("expected confirmation: %s", out)
	}
	if _, err := os.Stat(e.config); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := e.run("", "config", "init"); err == nil {
		t.Error("expected error when config exists")
	}

	e.args = nil
	out = e.mustRun("config", "show")
	if !strings.Contains(out, "backend: sqlite") {
		t.Errorf("expected saved backend in config: %s", out)
	}
}

func TestInvalidBackendFlag(t *testing.T) {
	e := newEnv(t, "sqlite")
	e.args = []string{"--backend", "floppy"}

	if _, err := e.run("", "list"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestEditRejectsEmptyColor(t *testing.T) {
	e := newEnv(t, "sqlite")
	id := createdID(t, e.mustRun("add", "Sky", "--color", "blue"))

	if _, err := e.run("", "edit", id, "--color", ""); err == nil {
		t.Error("expected error for empty color")
	}

	out := e.mustRun("show", id)
	if !strings.Contains(out, "Blue") {
		t.Errorf("expected color to stay blue: %s", out)
	}
}

func TestEditTrimsTitle(t *testing.T) {
	e := newEnv(t, "sqlite")
	id := createdID(t, e.mustRun("add", "Draft", "--content", "body"))

	e.mustRun("edit", id, "--title", "   ")

	out := e.mustRun("list")
	if !strings.Contains(out, "Untitled") {
		t.Errorf("expected blank title to be trimmed to Untitled: %s", out)
	}
}

func TestExecuteReportsErrorsWithMarker(t *testing.T) {
	e := newEnv(t, "sqlite")
	resetFlags(rootCmd)

	var errOut bytes.Buffer
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(append([]string{"--config", e.config}, e.args...), "show", "abcdef"))

	if err := Execute(); err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.HasPrefix(errOut.String(), "✗ ") || !strings.Contains(errOut.String(), "note not found") {
		t.Errorf("expected marked error on stderr: %q", errOut.String())
	}
}
