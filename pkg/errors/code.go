package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 11000-11999: Configuration errors
// 12000-12999: Test case errors
// 13000-13999: Judge pipeline errors
// 14000-14999: Terminal & UI errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalError ErrorCode = 10001
	InvalidParams ErrorCode = 10002

	// ========== Configuration Errors (11000-11999) ==========

	ConfigNotFound  ErrorCode = 11000
	ConfigInvalid   ErrorCode = 11001
	TestsetNotFound ErrorCode = 11002
	TestsetExists   ErrorCode = 11003

	// ========== Test Case Errors (12000-12999) ==========

	TestCaseNotFound ErrorCode = 12000
	TestCaseInvalid  ErrorCode = 12001

	// ========== Judge Pipeline Errors (13000-13999) ==========

	CompilationError  ErrorCode = 13000
	SpawnFailed       ErrorCode = 13001
	CleanupFailed     ErrorCode = 13002
	CheckerNotFound   ErrorCode = 13003
	InvalidTransition ErrorCode = 13004

	// ========== Terminal & UI Errors (14000-14999) ==========

	TerminalError ErrorCode = 14000
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	Success:       "Success",
	InternalError: "Internal error",
	InvalidParams: "Invalid parameters",

	ConfigNotFound:  "No Slither configuration found in the current directory. Run slither init first.",
	ConfigInvalid:   "Slither configuration is malformed",
	TestsetNotFound: "Testset not found",
	TestsetExists:   "A testset with that name already exists",

	TestCaseNotFound: "Input or output file missing for test",
	TestCaseInvalid:  "Invalid test case",

	CompilationError:  "Compile error",
	SpawnFailed:       "Failed to start command",
	CleanupFailed:     "Cleanup command failed",
	CheckerNotFound:   "Unknown checker type",
	InvalidTransition: "Invalid result state transition",

	TerminalError: "Terminal operation failed",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// ExitCode returns the process exit status used when the error aborts the CLI
func (c ErrorCode) ExitCode() int {
	switch {
	case c == Success:
		return 0
	case c >= 11000 && c < 12000:
		return 2
	case c == CompilationError:
		return 3
	case c == SpawnFailed:
		return 4
	default:
		return 1
	}
}
