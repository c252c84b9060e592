// Package profile names the kinds of tasks the sandbox runs for a testset.
package profile

// TaskType identifies the sandbox task category.
type TaskType string

const (
	TaskTypeCompile TaskType = "compile"
	TaskTypeRun     TaskType = "run"
	TaskTypeCleanup TaskType = "cleanup"
)
