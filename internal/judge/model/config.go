package model

import (
	"encoding/json"
	"time"
)

// DefaultDebugDelimiter marks a program output line as free-form diagnostics.
const DefaultDebugDelimiter = "#"

// Config maps testset names to their definitions, as stored in config.json.
type Config map[string]Testset

// Testset bundles limits, commands and a checker policy for one judged problem.
type Testset struct {
	Limits  Limits      `json:"limits"`
	IO      IOConfig    `json:"io"`
	Scripts Scripts     `json:"scripts"`
	Checker CheckerSpec `json:"checker"`
	Debug   string      `json:"debug,omitempty"`
}

// Limits holds the per-run time limit in milliseconds and memory limit in megabytes.
type Limits struct {
	Time   int64   `json:"time"`
	Memory float64 `json:"memory"`
}

// IOConfig describes how the program reads input and writes output.
type IOConfig struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Scripts are shell command strings; {name} placeholders are resolved when the testset is created.
type Scripts struct {
	Compile string `json:"compile,omitempty"`
	Run     string `json:"run"`
	Cleanup string `json:"cleanup,omitempty"`
}

// CheckerSpec selects a comparison policy and its parameters.
type CheckerSpec struct {
	Type    string         `json:"type"`
	Options CheckerOptions `json:"options,omitempty"`
}

// CheckerOptions carries policy parameters. Amount is the abs-rel tolerance exponent.
type CheckerOptions struct {
	Amount int `json:"amount,omitempty"`
}

// UnmarshalJSON also accepts the flat {"type": "abs-rel", "amount": 3} form.
func (c *CheckerSpec) UnmarshalJSON(data []byte) error {
	type plain CheckerSpec
	var raw struct {
		plain
		Amount *int `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = CheckerSpec(raw.plain)
	if raw.Amount != nil && c.Options.Amount == 0 {
		c.Options.Amount = *raw.Amount
	}
	return nil
}

// TimeLimit returns the wall-clock limit; zero means unlimited.
func (t Testset) TimeLimit() time.Duration {
	if t.Limits.Time <= 0 {
		return 0
	}
	return time.Duration(t.Limits.Time) * time.Millisecond
}

// DebugDelimiter returns the configured debug line prefix or the default.
func (t Testset) DebugDelimiter() string {
	if t.Debug == "" {
		return DefaultDebugDelimiter
	}
	return t.Debug
}
