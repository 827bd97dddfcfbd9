package domain

import "time"

// Step names one stage of the bootstrap protocol.
type Step string

const (
	// StepReset wipes the existing contents of the root.
	StepReset Step = "reset"
	// StepPrepare creates the directory skeleton.
	StepPrepare Step = "prepare"
	// StepWriteConfig writes the synthesized configuration.
	StepWriteConfig Step = "write-config"
	// StepSync runs the package manager against the root.
	StepSync Step = "sync"
	// StepSelfInstall copies the package manager into the root.
	StepSelfInstall Step = "self-install"
	// StepCleanup removes the scratch area.
	StepCleanup Step = "cleanup"
)

// Steps returns the protocol stages in execution order.
func Steps() []Step {
	return []Step{StepReset, StepPrepare, StepWriteConfig, StepSync, StepSelfInstall, StepCleanup}
}

// StepStatus represents the outcome of a step.
type StepStatus string

const (
	// StepStatusCompleted indicates the step ran successfully.
	StepStatusCompleted StepStatus = "completed"
	// StepStatusFailed indicates the step failed and aborted the run.
	StepStatusFailed StepStatus = "failed"
	// StepStatusWarned indicates the step failed but the failure is tolerated.
	StepStatusWarned StepStatus = "warned"
	// StepStatusUnchanged indicates the step ran and its output already matched.
	StepStatusUnchanged StepStatus = "unchanged"
	// StepStatusSkipped indicates the step was not requested.
	StepStatusSkipped StepStatus = "skipped"
)

// IsTerminal reports whether the status ends the run.
func (s StepStatus) IsTerminal() bool {
	return s == StepStatusFailed
}

// StepResult records how a single step went.
type StepResult struct {
	Step     Step
	Status   StepStatus
	Duration time.Duration
	Err      error
}

// Report summarizes a bootstrap run.
type Report struct {
	Root    TargetRoot
	Steps   []StepResult
	Elapsed time.Duration

	// ConfigDigest is the fingerprint of the configuration document written to the root.
	ConfigDigest string
}

// Status returns the status recorded for step, or StepStatusSkipped if it never ran.
func (r *Report) Status(step Step) StepStatus {
	for _, res := range r.Steps {
		if res.Step == step {
			return res.Status
		}
	}
	return StepStatusSkipped
}

// Warnings returns the tolerated errors of the run.
func (r *Report) Warnings() []error {
	var errs []error
	for _, res := range r.Steps {
		if res.Status == StepStatusWarned && res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errs
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
