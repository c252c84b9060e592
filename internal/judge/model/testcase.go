package model

// TestCase is one stored input/expected-output pair.
type TestCase struct {
	Index  int
	Input  string
	Output string
}
