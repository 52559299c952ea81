package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSDEErrorFormatting(t *testing.T) {
	err := NewBuildError("command_failed", "command failed: make", fmt.Errorf("exit status 2"))
	err.WithComponent("seed")

	message := err.Error()
	assert.Contains(t, message, "[command_failed]")
	assert.Contains(t, message, "component:seed")
	assert.Contains(t, message, "command failed: make")
	assert.Contains(t, message, "exit status 2")
}

func TestSDEErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("exit status 2")
	err := NewBuildError("command_failed", "command failed", cause)

	assert.ErrorIs(t, err, cause)
}

func TestSDEErrorIsMatchesTypeAndCode(t *testing.T) {
	err := NewConfigError("descriptor_no_id", "component ID was not found")

	assert.True(t, errors.Is(err, NewConfigError("descriptor_no_id", "different message")))
	assert.False(t, errors.Is(err, NewConfigError("other_code", "component ID was not found")))
	assert.False(t, errors.Is(err, NewIOError("descriptor_no_id", "component ID was not found", nil)))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsConfigError(NewConfigError("code", "msg")))
	assert.False(t, IsConfigError(NewIOError("code", "msg", nil)))

	assert.True(t, IsDependencyError(NewDependencyError("code", "msg")))
	assert.False(t, IsDependencyError(fmt.Errorf("plain error")))

	assert.True(t, IsRecoverable(NewConfigError("code", "msg")))
	assert.True(t, IsRecoverable(NewBuildError("code", "msg", nil)))
	assert.False(t, IsRecoverable(NewIOError("code", "msg", nil)))
	assert.False(t, IsRecoverable(NewInternalError("code", "msg", nil)))
}

func TestWrappedClassification(t *testing.T) {
	wrapped := fmt.Errorf("loading failed: %w", NewConfigError("config_no_version", "no version"))
	assert.True(t, IsConfigError(wrapped))
}

func TestCollectorAggregatesFailures(t *testing.T) {
	collector := NewCollector()
	assert.False(t, collector.HasFailures())

	collector.Add(TestFailure{Component: "alpha", Suite: "unit", Message: "2 failed", Severity: SeverityError})
	collector.Add(TestFailure{Component: "beta", Suite: "unit", Message: "1 failed", Severity: SeverityError})
	collector.Add(TestFailure{Component: "alpha", Suite: "lint", Message: "findings", Severity: SeverityWarning})

	assert.True(t, collector.HasFailures())
	assert.Len(t, collector.Failures(), 3)
	assert.Len(t, collector.FailuresFor("alpha"), 2)
	assert.Len(t, collector.FailuresFor("beta"), 1)
	assert.Empty(t, collector.FailuresFor("gamma"))

	for _, failure := range collector.Failures() {
		assert.False(t, failure.Timestamp.IsZero())
	}
}

func TestCollectorAddError(t *testing.T) {
	collector := NewCollector()

	collector.AddError(nil)
	assert.False(t, collector.HasFailures())

	collector.AddError(fmt.Errorf("runner failed"))
	assert.True(t, collector.HasFailures())
}

func TestCollectorClear(t *testing.T) {
	collector := NewCollector()
	collector.Add(TestFailure{Component: "alpha"})
	collector.AddError(fmt.Errorf("boom"))

	collector.Clear()
	assert.False(t, collector.HasFailures())
	assert.Empty(t, collector.Failures())
}

func TestTestFailureError(t *testing.T) {
	failure := &TestFailure{
		Component: "seed",
		Suite:     "unit",
		Message:   "2 failed",
		Severity:  SeverityError,
	}

	message := failure.Error()
	assert.Contains(t, message, "seed")
	assert.Contains(t, message, "unit")
	assert.Contains(t, message, "error")
	require.Contains(t, message, "2 failed")
}
