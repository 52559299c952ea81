package errors

import (
	"fmt"
	"sync"
	"time"
)

// TestFailure records one failed or errored suite for a component.
type TestFailure struct {
	Component string
	Suite     string
	Message   string
	Severity  Severity
	Timestamp time.Time
}

// Severity represents the severity of a recorded failure.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (tf *TestFailure) Error() string {
	return fmt.Sprintf("%s/%s: %s: %s", tf.Component, tf.Suite, tf.Severity, tf.Message)
}

// Collector aggregates failures across components so a multi-component run
// can report an overall outcome after every suite has executed.
type Collector struct {
	failures []TestFailure
	errors   []error
	mutex    sync.RWMutex
}

// NewCollector creates a new failure collector.
func NewCollector() *Collector {
	return &Collector{
		failures: make([]TestFailure, 0),
		errors:   make([]error, 0),
	}
}

// Add records a test failure.
func (c *Collector) Add(failure TestFailure) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	failure.Timestamp = time.Now()
	c.failures = append(c.failures, failure)
}

// AddError records a general error.
func (c *Collector) AddError(err error) {
	if err == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.errors = append(c.errors, err)
}

// Failures returns all recorded test failures.
func (c *Collector) Failures() []TestFailure {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]TestFailure, len(c.failures))
	copy(result, c.failures)
	return result
}

// FailuresFor returns the failures recorded for a specific component.
func (c *Collector) FailuresFor(component string) []TestFailure {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var result []TestFailure
	for _, f := range c.failures {
		if f.Component == component {
			result = append(result, f)
		}
	}
	return result
}

// HasFailures returns true if any failure or error was recorded.
func (c *Collector) HasFailures() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.failures) > 0 || len(c.errors) > 0
}

// Clear drops all recorded failures and errors.
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.failures = c.failures[:0]
	c.errors = c.errors[:0]
}
