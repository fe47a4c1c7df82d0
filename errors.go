package tokamak

import "fmt"

// GeometryConstraintError reports an invalid geometric ordering (for example
// an inner radius larger than an outer radius) detected while computing a
// profile, before any kernel call is made.
type GeometryConstraintError struct {
	Msg string
}

func (e *GeometryConstraintError) Error() string { return e.Msg }

// Constraintf returns a GeometryConstraintError with a formatted message.
func Constraintf(format string, args ...any) error {
	return &GeometryConstraintError{Msg: fmt.Sprintf(format, args...)}
}

// Stage identifies the step of the solid build pipeline that failed.
type Stage uint8

const (
	StageBase Stage = iota
	StageReplication
	StageCut
	StageIntersect
	StageUnion
	StageWedge
)

func (s Stage) String() string {
	switch s {
	case StageBase:
		return "base"
	case StageReplication:
		return "replication"
	case StageCut:
		return "cut"
	case StageIntersect:
		return "intersect"
	case StageUnion:
		return "union"
	case StageWedge:
		return "wedge"
	}
	return "unknown"
}

// SolidConstructionError reports that the geometry kernel could not realize
// an operation. It identifies the failing pipeline stage and the owning
// shape so a maintainer can locate the degenerate input.
type SolidConstructionError struct {
	Shape string
	Stage Stage
	Err   error
}

func (e *SolidConstructionError) Error() string {
	return fmt.Sprintf("solid construction of %q failed at %s stage: %v", e.Shape, e.Stage, e.Err)
}

func (e *SolidConstructionError) Unwrap() error { return e.Err }

// DuplicateOutputError reports two assembly members declaring the same
// export filename.
type DuplicateOutputError struct {
	Filename string
}

func (e *DuplicateOutputError) Error() string {
	return fmt.Sprintf("duplicate output filename %q in assembly", e.Filename)
}

// ConfigurationError reports a configuration omission (typically a missing
// material tag or output filename) found before any file I/O is attempted.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// Configf returns a ConfigurationError with a formatted message.
func Configf(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}
