package command

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	"slither/internal/cli/config"
	"slither/internal/judge/model"
	"slither/internal/judge/repository"
	appErr "slither/pkg/errors"
)

func TestParseTestList(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1", []int{1}},
		{"1,3,5-8", []int{1, 3, 5, 6, 7, 8}},
		{"3,1,2", []int{3, 1, 2}},
		{" 2 , 4-4 ", []int{2, 4}},
		{"2,1-3,2", []int{2, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTestList(tt.in)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "a", "0", "5-3", "1-", "-2", "1,,x", "1-10001", "1-2000000000"} {
		if _, err := ParseTestList(bad); !appErr.Is(err, appErr.InvalidParams) {
			t.Fatalf("expected InvalidParams for %q, got %v", bad, err)
		}
	}

	if got, err := ParseTestList("1-10000"); err != nil || len(got) != maxRangeSpan {
		t.Fatalf("largest range rejected: %d indices, err %v", len(got), err)
	}
}

func TestParseInterspersed(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tests := fs.String("tests", "", "")
	noBrowse := fs.Bool("no-browse", false, "")

	positional, err := parseInterspersed(fs, []string{"a", "-tests", "1-3", "-no-browse"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(positional, []string{"a"}) || *tests != "1-3" || !*noBrowse {
		t.Fatalf("positional=%v tests=%q noBrowse=%v", positional, *tests, *noBrowse)
	}
}

func TestRegistry(t *testing.T) {
	registry := Registry()
	want := []string{"addset", "addtest", "cattest", "edittest", "init", "test"}
	if got := Names(registry); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for name, cmd := range registry {
		if cmd.Run == nil || cmd.Usage == "" {
			t.Fatalf("command %s is incomplete", name)
		}
	}
}

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	edited []string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	root := t.TempDir()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	ta := &testApp{stdout: stdout, stderr: stderr}
	ta.App = &App{
		Root:     root,
		Settings: config.Config{Inspector: config.InspectorConfig{MaxLines: config.DefaultMaxLines}},
		Stdin:    io.NopCloser(strings.NewReader("")),
		Stdout:   stdout,
		Stderr:   stderr,
		Configs:  repository.NewConfigRepository(root),
		Tests:    repository.NewTestcaseRepository(root),
		Editor: func(ctx context.Context, path string) error {
			ta.edited = append(ta.edited, path)
			return nil
		},
	}
	return ta
}

func (ta *testApp) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	cmd, ok := Registry()[name]
	if !ok {
		t.Fatalf("unknown command %s", name)
	}
	return cmd.Run(context.Background(), ta.App, args)
}

func (ta *testApp) addTestset(t *testing.T, name string, ts model.Testset) {
	t.Helper()
	if err := ta.run(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := ta.Configs.AddTestset(name, ts); err != nil {
		t.Fatalf("add testset: %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	ta := newTestApp(t)
	if err := ta.run(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(ta.stdout.String(), "Initialized Slither") {
		t.Fatalf("stdout = %q", ta.stdout.String())
	}
	if err := ta.run(t, "init"); err == nil {
		t.Fatal("second init should refuse to overwrite")
	}
	if err := ta.run(t, "init", "-f"); err != nil {
		t.Fatalf("forced init: %v", err)
	}
}

func TestCommandsRequireWorkspace(t *testing.T) {
	ta := newTestApp(t)
	for _, args := range [][]string{{"addset"}, {"addtest", "a"}, {"cattest", "a", "1"}, {"test", "a"}} {
		if err := ta.run(t, args[0], args[1:]...); !appErr.Is(err, appErr.ConfigNotFound) {
			t.Fatalf("%v: expected ConfigNotFound, got %v", args, err)
		}
	}
}

func TestAddTestUsesNextIndex(t *testing.T) {
	ta := newTestApp(t)
	ta.addTestset(t, "a", model.Testset{Scripts: model.Scripts{Run: "cat"}})
	if err := ta.Tests.Write("a", model.TestCase{Index: 1, Input: "x", Output: "x"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := ta.run(t, "addtest", "a"); err != nil {
		t.Fatalf("addtest: %v", err)
	}
	in, out := ta.Tests.Paths("a", 2)
	if !reflect.DeepEqual(ta.edited, []string{in, out}) {
		t.Fatalf("edited = %v, want %v", ta.edited, []string{in, out})
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if err := ta.run(t, "addtest", "b"); !appErr.Is(err, appErr.TestsetNotFound) {
		t.Fatalf("expected TestsetNotFound, got %v", err)
	}
}

func TestEditTestRequiresExistingTest(t *testing.T) {
	ta := newTestApp(t)
	ta.addTestset(t, "a", model.Testset{Scripts: model.Scripts{Run: "cat"}})
	if err := ta.run(t, "edittest", "a", "3"); !appErr.Is(err, appErr.TestCaseNotFound) {
		t.Fatalf("expected TestCaseNotFound, got %v", err)
	}
	if err := ta.Tests.Write("a", model.TestCase{Index: 3}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ta.run(t, "edittest", "a", "3"); err != nil {
		t.Fatalf("edittest: %v", err)
	}
	if len(ta.edited) != 2 {
		t.Fatalf("edited = %v", ta.edited)
	}
}

func TestCatTest(t *testing.T) {
	ta := newTestApp(t)
	ta.addTestset(t, "a", model.Testset{Scripts: model.Scripts{Run: "cat"}})
	if err := ta.Tests.Write("a", model.TestCase{Index: 1, Input: "1 2\n", Output: "3\n"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	ta.stdout.Reset()
	if err := ta.run(t, "cattest", "a", "1", "-in"); err != nil {
		t.Fatalf("cattest -in: %v", err)
	}
	if ta.stdout.String() != "1 2\n" {
		t.Fatalf("input = %q", ta.stdout.String())
	}

	ta.stdout.Reset()
	if err := ta.run(t, "cattest", "-out", "a", "1"); err != nil {
		t.Fatalf("cattest -out: %v", err)
	}
	if ta.stdout.String() != "3\n" {
		t.Fatalf("output = %q", ta.stdout.String())
	}

	ta.stdout.Reset()
	if err := ta.run(t, "cattest", "a", "1"); err != nil {
		t.Fatalf("cattest: %v", err)
	}
	if got := ta.stdout.String(); !strings.HasPrefix(got, "1 2\n") || !strings.Contains(got, "Input ⤴") || !strings.HasSuffix(got, "3\n\n") {
		t.Fatalf("combined = %q", got)
	}

	if err := ta.run(t, "cattest", "a", "1", "-in", "-out"); !appErr.Is(err, appErr.InvalidParams) {
		t.Fatalf("expected InvalidParams, got %v", err)
	}
	if err := ta.run(t, "cattest", "a"); !appErr.Is(err, appErr.InvalidParams) {
		t.Fatalf("expected InvalidParams for missing number, got %v", err)
	}
}

func TestTestCommandWithoutTests(t *testing.T) {
	ta := newTestApp(t)
	ta.addTestset(t, "a", model.Testset{Scripts: model.Scripts{Run: "cat"}})
	if err := ta.run(t, "test", "a"); !appErr.Is(err, appErr.TestCaseNotFound) {
		t.Fatalf("expected TestCaseNotFound, got %v", err)
	}
	if err := ta.run(t, "test", "a", "-tests", "2-1"); !appErr.Is(err, appErr.InvalidParams) {
		t.Fatalf("expected InvalidParams, got %v", err)
	}
}

func TestAddSetWithAsker(t *testing.T) {
	ta := newTestApp(t)
	if err := ta.run(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	ta.Asker = &fixedAsker{answers: map[string]string{"Name": "sum", "Run Command": "./{name}"}}
	if err := ta.run(t, "addset"); err != nil {
		t.Fatalf("addset: %v", err)
	}
	ts, err := ta.Configs.Testset("sum")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ts.Scripts.Run != "./sum" || ts.Checker.Type != "lines" {
		t.Fatalf("testset = %+v", ts)
	}
	if err := ta.run(t, "addset"); !appErr.Is(err, appErr.TestsetExists) {
		t.Fatalf("expected TestsetExists, got %v", err)
	}
}

type fixedAsker struct {
	answers map[string]string
}

func (f *fixedAsker) Ask(question, def string) (string, error) {
	if answer, ok := f.answers[question]; ok {
		return answer, nil
	}
	return def, nil
}

func (f *fixedAsker) Choose(question string, choices []string) (int, error) {
	return 0, nil
}
