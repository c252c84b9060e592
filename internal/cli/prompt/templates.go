package prompt

import (
	"strings"

	"slither/internal/judge/model"
)

// Template supplies defaults for a language.
type Template struct {
	Name    string
	Limits  model.Limits
	Scripts model.Scripts
}

// Templates in the order they are offered.
var Templates = []Template{
	{
		Name:   "java",
		Limits: model.Limits{Time: 4000, Memory: 64},
		Scripts: model.Scripts{
			Compile: "javac {name}.java",
			Run:     "java -Xmx512M -Xss64M -DONLINE_JUDGE=false -Duser.language=en -Duser.region=US -Duser.variant=US {name}",
			Cleanup: `ls | grep -e '{name}.*\.class' | xargs rm`,
		},
	},
	{
		Name:    "python",
		Limits:  model.Limits{Time: 8000, Memory: 64},
		Scripts: model.Scripts{Run: "python {name}.py"},
	},
	{
		Name:    "js",
		Limits:  model.Limits{Time: 2000, Memory: 64},
		Scripts: model.Scripts{Run: "node {name}.js"},
	},
	{Name: "none"},
}

type checkerChoice struct {
	label string
	spec  model.CheckerSpec
}

var checkerChoices = []checkerChoice{
	{"Exact Match", model.CheckerSpec{Type: "lines"}},
	{"1e-3 Error", model.CheckerSpec{Type: "abs-rel", Options: model.CheckerOptions{Amount: 3}}},
	{"1e-4 Error", model.CheckerSpec{Type: "abs-rel", Options: model.CheckerOptions{Amount: 4}}},
	{"1e-6 Error", model.CheckerSpec{Type: "abs-rel", Options: model.CheckerOptions{Amount: 6}}},
}

// ResolveName replaces every {name} placeholder in the testset's io modes and scripts.
func ResolveName(ts model.Testset, name string) model.Testset {
	r := strings.NewReplacer("{name}", name)
	ts.IO.Input = r.Replace(ts.IO.Input)
	ts.IO.Output = r.Replace(ts.IO.Output)
	ts.Scripts.Compile = r.Replace(ts.Scripts.Compile)
	ts.Scripts.Run = r.Replace(ts.Scripts.Run)
	ts.Scripts.Cleanup = r.Replace(ts.Scripts.Cleanup)
	return ts
}
