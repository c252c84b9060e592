package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
)

const (
	inputExt  = ".in"
	outputExt = ".out"
)

// TestcaseRepository reads and writes N.in/N.out files under .slither/<testset>/.
type TestcaseRepository struct {
	root string
}

// NewTestcaseRepository creates a repository for the workspace rooted at root.
func NewTestcaseRepository(root string) *TestcaseRepository {
	return &TestcaseRepository{root: root}
}

// Dir returns the directory holding a testset's files.
func (r *TestcaseRepository) Dir(testset string) string {
	return filepath.Join(r.root, DirName, testset)
}

// Paths returns the input and expected output paths of one test.
func (r *TestcaseRepository) Paths(testset string, index int) (string, string) {
	base := filepath.Join(r.Dir(testset), strconv.Itoa(index))
	return base + inputExt, base + outputExt
}

// Indices returns the sorted distinct integer prefixes of the files in the testset directory.
func (r *TestcaseRepository) Indices(testset string) ([]int, error) {
	entries, err := os.ReadDir(r.Dir(testset))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, appErr.Wrapf(err, appErr.InternalError, "list %s failed", r.Dir(testset))
	}
	seen := make(map[int]struct{}, len(entries))
	indices := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		prefix, _, _ := strings.Cut(entry.Name(), ".")
		idx, err := strconv.Atoi(prefix)
		if err != nil || idx <= 0 {
			continue
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, nil
}

// Exists reports whether the input file of a test is present.
func (r *TestcaseRepository) Exists(testset string, index int) bool {
	in, _ := r.Paths(testset, index)
	_, err := os.Stat(in)
	return err == nil
}

// Read loads both files of one test.
func (r *TestcaseRepository) Read(testset string, index int) (model.TestCase, error) {
	in, out := r.Paths(testset, index)
	input, err := readFile(in, index)
	if err != nil {
		return model.TestCase{}, err
	}
	output, err := readFile(out, index)
	if err != nil {
		return model.TestCase{}, err
	}
	return model.TestCase{Index: index, Input: input, Output: output}, nil
}

// ReadInput loads only the input file.
func (r *TestcaseRepository) ReadInput(testset string, index int) (string, error) {
	in, _ := r.Paths(testset, index)
	return readFile(in, index)
}

// ReadOutput loads only the expected output file.
func (r *TestcaseRepository) ReadOutput(testset string, index int) (string, error) {
	_, out := r.Paths(testset, index)
	return readFile(out, index)
}

// NextIndex returns the smallest positive index without an input file.
func (r *TestcaseRepository) NextIndex(testset string) int {
	idx := 1
	for r.Exists(testset, idx) {
		idx++
	}
	return idx
}

// Create makes empty input and output files for a test, keeping existing content.
func (r *TestcaseRepository) Create(testset string, index int) error {
	if index <= 0 {
		return appErr.ValidationError("test", "index must be positive")
	}
	if err := os.MkdirAll(r.Dir(testset), 0o755); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "create %s failed", r.Dir(testset))
	}
	in, out := r.Paths(testset, index)
	for _, path := range []string{in, out} {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return appErr.Wrapf(err, appErr.InternalError, "create %s failed", path)
		}
		if err := f.Close(); err != nil {
			return appErr.Wrapf(err, appErr.InternalError, "close %s failed", path)
		}
	}
	return nil
}

// Write stores the contents of a test.
func (r *TestcaseRepository) Write(testset string, tc model.TestCase) error {
	if err := r.Create(testset, tc.Index); err != nil {
		return err
	}
	in, out := r.Paths(testset, tc.Index)
	if err := os.WriteFile(in, []byte(tc.Input), 0o644); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "write %s failed", in)
	}
	if err := os.WriteFile(out, []byte(tc.Output), 0o644); err != nil {
		return appErr.Wrapf(err, appErr.InternalError, "write %s failed", out)
	}
	return nil
}

func readFile(path string, index int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", appErr.Newf(appErr.TestCaseNotFound, "Input or output file missing for test %d.", index).
				WithDetail("path", path)
		}
		return "", appErr.Wrapf(err, appErr.TestCaseInvalid, "read %s failed", path)
	}
	return string(data), nil
}
