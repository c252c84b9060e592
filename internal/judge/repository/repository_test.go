package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
)

func TestConfigLoadMissing(t *testing.T) {
	repo := NewConfigRepository(t.TempDir())
	if _, err := repo.Load(); !appErr.Is(err, appErr.ConfigNotFound) {
		t.Fatalf("expected ConfigNotFound, got %v", err)
	}
	if _, err := repo.Testset("a"); !appErr.Is(err, appErr.ConfigNotFound) {
		t.Fatalf("expected ConfigNotFound, got %v", err)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	repo := NewConfigRepository(t.TempDir())
	if err := repo.Init(false); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := repo.AddTestset("a", model.Testset{Scripts: model.Scripts{Run: "./a"}}); err != nil {
		t.Fatalf("add testset failed: %v", err)
	}
	if err := repo.Init(false); err == nil {
		t.Fatal("second init without force should fail")
	}
	if err := repo.Init(true); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	cfg, err := repo.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(cfg) != 0 {
		t.Fatalf("forced init should reset config, got %v", cfg)
	}
}

func TestConfigTestsetLookup(t *testing.T) {
	repo := NewConfigRepository(t.TempDir())
	if err := repo.Init(false); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	ts := model.Testset{
		Limits:  model.Limits{Time: 1000, Memory: 256},
		Scripts: model.Scripts{Compile: "javac a.java", Run: "java a", Cleanup: "rm a.class"},
		Checker: model.CheckerSpec{Type: "abs-rel", Options: model.CheckerOptions{Amount: 3}},
	}
	if err := repo.AddTestset("a", ts); err != nil {
		t.Fatalf("add testset failed: %v", err)
	}
	if err := repo.AddTestset("a", ts); !appErr.Is(err, appErr.TestsetExists) {
		t.Fatalf("expected TestsetExists, got %v", err)
	}
	got, err := repo.Testset("a")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !reflect.DeepEqual(got, ts) {
		t.Fatalf("testset = %+v, want %+v", got, ts)
	}
	if _, err := repo.Testset("b"); !appErr.Is(err, appErr.TestsetNotFound) {
		t.Fatalf("expected TestsetNotFound, got %v", err)
	}
	if info, err := os.Stat(filepath.Join(repo.Dir(), "a")); err != nil || !info.IsDir() {
		t.Fatalf("testset directory not created: %v", err)
	}
}

func TestConfigMalformed(t *testing.T) {
	repo := NewConfigRepository(t.TempDir())
	if err := os.MkdirAll(repo.Dir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(repo.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := repo.Load(); !appErr.Is(err, appErr.ConfigInvalid) {
		t.Fatalf("expected ConfigInvalid, got %v", err)
	}
}

func TestConfigAcceptsFlatCheckerAmount(t *testing.T) {
	repo := NewConfigRepository(t.TempDir())
	if err := os.MkdirAll(repo.Dir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := `{"a": {"limits": {"time": 500, "memory": 64}, "scripts": {"run": "./a"}, "checker": {"type": "abs-rel", "amount": 4}}}`
	if err := os.WriteFile(repo.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ts, err := repo.Testset("a")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if ts.Checker.Type != "abs-rel" || ts.Checker.Options.Amount != 4 {
		t.Fatalf("unexpected checker: %+v", ts.Checker)
	}
}

func TestTestcaseIndices(t *testing.T) {
	root := t.TempDir()
	repo := NewTestcaseRepository(root)
	dir := repo.Dir("a")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"10.in", "10.out", "2.in", "2.out", "3.in", "notes.txt", "0.in"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	got, err := repo.Indices("a")
	if err != nil {
		t.Fatalf("indices failed: %v", err)
	}
	if want := []int{2, 3, 10}; !reflect.DeepEqual(got, want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}
	if got := repo.NextIndex("a"); got != 1 {
		t.Fatalf("NextIndex = %d, want 1", got)
	}
	if got, err := repo.Indices("missing"); err != nil || len(got) != 0 {
		t.Fatalf("missing directory should yield no indices: %v %v", got, err)
	}
}

func TestTestcaseReadWrite(t *testing.T) {
	repo := NewTestcaseRepository(t.TempDir())
	if err := repo.Write("a", model.TestCase{Index: 1, Input: "1 2\n", Output: "3\n"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	tc, err := repo.Read("a", 1)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if tc.Input != "1 2\n" || tc.Output != "3\n" {
		t.Fatalf("unexpected test case: %+v", tc)
	}
	if got := repo.NextIndex("a"); got != 2 {
		t.Fatalf("NextIndex = %d, want 2", got)
	}

	in, out := repo.Paths("a", 2)
	if err := os.WriteFile(in, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := repo.Read("a", 2); !appErr.Is(err, appErr.TestCaseNotFound) {
		t.Fatalf("expected TestCaseNotFound for missing %s, got %v", out, err)
	}
}

func TestTestcaseCreateKeepsContent(t *testing.T) {
	repo := NewTestcaseRepository(t.TempDir())
	if err := repo.Write("a", model.TestCase{Index: 1, Input: "keep", Output: "me"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := repo.Create("a", 1); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	input, err := repo.ReadInput("a", 1)
	if err != nil || input != "keep" {
		t.Fatalf("input = %q, %v", input, err)
	}
}
