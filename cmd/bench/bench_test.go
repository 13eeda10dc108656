package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/workbench/internal/commit"
	"github.com/thatcatcamp/workbench/internal/storage"
	"github.com/thatcatcamp/workbench/internal/themes"
)

func newFormCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFormFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	return cmd
}

func TestFormFromFlags(t *testing.T) {
	cmd := newFormCmd(t, "-t", "fix", "--scope", "auth", "-m", "rotate tokens",
		"--breaking", "--indicator", "footer", "--breaking-description", "changes token format",
		"--footer", "Refs=#12", "--footer", "Reviewed-by: Ann")

	form, err := formFromFlags(cmd)
	if err != nil {
		t.Fatalf("formFromFlags failed: %v", err)
	}

	want := "fix(auth): rotate tokens\n\nBREAKING CHANGE: changes token format\nRefs: #12\nReviewed-by: Ann"
	if got := form.Message(); got != want {
		t.Errorf("unexpected message:\n%s\nwant:\n%s", got, want)
	}
	if form.Footers[1].ID != 1 {
		t.Errorf("expected footer ids in flag order, got %d", form.Footers[1].ID)
	}
}

func TestFormFromFlagsDefaults(t *testing.T) {
	form, err := formFromFlags(newFormCmd(t, "-m", "add login"))
	if err != nil {
		t.Fatalf("formFromFlags failed: %v", err)
	}
	if form.Type != commit.DefaultType || form.BreakingChangeIndicator != commit.IndicatorBang {
		t.Errorf("unexpected defaults: %+v", form)
	}
}

func TestFormFromFlagsRejects(t *testing.T) {
	cases := [][]string{
		{"-t", "feature"},
		{"--indicator", "sideways"},
		{"--footer", "no separator"},
	}
	for _, args := range cases {
		if _, err := formFromFlags(newFormCmd(t, args...)); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestFlatten(t *testing.T) {
	lines := flatten("", map[string]interface{}{
		"palette": map[string]interface{}{"format": "scss", "saturation": 100},
		"log":     map[string]interface{}{"level": "info"},
	})

	want := []string{"log.level: info", "palette.format: scss", "palette.saturation: 100"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestOpenStore(t *testing.T) {
	s, err := openStore("memory", "")
	if err != nil {
		t.Fatalf("openStore(memory) failed: %v", err)
	}
	if _, ok := s.(*storage.MemoryStore); !ok {
		t.Errorf("expected a memory store, got %T", s)
	}

	s, err = openStore("sqlite", filepath.Join(t.TempDir(), "bench.db"))
	if err != nil {
		t.Fatalf("openStore(sqlite) failed: %v", err)
	}
	if err := s.SetItem("k", "v"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	if _, err := openStore("postgres", ""); err == nil {
		t.Error("expected error for unsupported storage type")
	}
}

func TestLoadCommit(t *testing.T) {
	store := storage.NewMemoryStore()
	saved, err := commit.NewComposer(store, nil, nil).SaveForm(commit.Form{
		Type:        "docs",
		Scope:       "readme",
		Description: "explain backups",
		Footers:     []commit.Footer{{ID: 0, Token: "Refs", Value: "#3"}},
	})
	if err != nil {
		t.Fatalf("SaveForm failed: %v", err)
	}

	c := commit.NewComposer(store, nil, nil)
	if err := c.LoadSaved(); err != nil {
		t.Fatalf("LoadSaved failed: %v", err)
	}
	preview, err := loadCommit(c, saved.ID)
	if err != nil {
		t.Fatalf("loadCommit failed: %v", err)
	}
	if preview != "docs(readme): explain backups\n\nRefs: #3" {
		t.Errorf("unexpected preview: %q", preview)
	}
	if c.Form().Scope != "readme" {
		t.Errorf("expected the form to hold the loaded message, got %+v", c.Form())
	}

	if _, err := loadCommit(c, "missing"); !errors.Is(err, commit.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestActiveCSS(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SetItem(storage.KeyTheme, string(themes.ForestGreen))
	store.SetItem(storage.KeyMode, string(themes.PreferenceDark))

	svc := themes.NewService(themes.Platform{Browser: true}, store, nil, nil, nil)
	svc.Initialize()

	css, err := activeCSS(svc)
	if err != nil {
		t.Fatalf("activeCSS failed: %v", err)
	}
	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("expected :root variables, got %q", css[:20])
	}

	want, err := themes.GenerateColors(themes.GetTheme(themes.ForestGreen), true)
	if err != nil {
		t.Fatalf("GenerateColors failed: %v", err)
	}
	if !strings.Contains(css, "--color-primary: "+want.Primary+";") {
		t.Errorf("expected the dark forest green primary %s in:\n%s", want.Primary, css)
	}
}
