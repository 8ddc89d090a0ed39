package core

import (
	"errors"
	"fmt"
)

var (
	ErrRegionUnderflow = errors.New("end called with no open region")
	ErrNotActive       = errors.New("panel is not active")
)

// ContractViolation is a misuse of the engine by a caller: unbalanced regions,
// rendering outside the active state, attaching twice.
type ContractViolation struct {
	Op     string
	Reason string
	Err    error
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Reason)
}

func (e *ContractViolation) Unwrap() error { return e.Err }

func violation(op, reason string, err error) *ContractViolation {
	return &ContractViolation{Op: op, Reason: reason, Err: err}
}

// ConfigurationError is terminal for a panel: its target was not allowed to exist.
type ConfigurationError struct {
	Target     string
	Reason     string
	DestroyErr error
}

func (e *ConfigurationError) Error() string {
	if e.DestroyErr != nil {
		return fmt.Sprintf("%s: %s (destroy failed: %v)", e.Target, e.Reason, e.DestroyErr)
	}
	return fmt.Sprintf("%s: %s", e.Target, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.DestroyErr }

// HostInteropFailure wraps anything else that went wrong while a region was open.
type HostInteropFailure struct {
	Op  string
	Err error
}

func (e *HostInteropFailure) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *HostInteropFailure) Unwrap() error { return e.Err }

// asPassError turns a recovered panic value into one of the pass error types.
func asPassError(op string, r any) error {
	switch v := r.(type) {
	case *ContractViolation:
		return v
	case *HostInteropFailure:
		return v
	case error:
		var cv *ContractViolation
		if errors.As(v, &cv) {
			return cv
		}
		return &HostInteropFailure{Op: op, Err: v}
	default:
		return &HostInteropFailure{Op: op, Err: fmt.Errorf("%v", v)}
	}
}
