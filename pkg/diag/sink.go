/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package diag

import (
	"github.com/untillpro/goutils/logger"
)

// Receives violations noticed by components that do not return them to a caller.
type ISink interface {
	Report(v *Violation)
}

// Adapts ordinary function to ISink.
type SinkFunc func(*Violation)

func (f SinkFunc) Report(v *Violation) { f(v) }

type logSink struct{}

// Returns sink which writes violations to verbose log.
func LogSink() ISink { return logSink{} }

func (logSink) Report(v *Violation) {
	if logger.IsVerbose() {
		logger.Verbose("violation", v.ID(), v.Error())
	}
}

type nopSink struct{}

// Returns sink which drops all violations.
func NopSink() ISink { return nopSink{} }

func (nopSink) Report(*Violation) {}

// Collects violations reported to it. Useful in tests.
type Collector struct {
	Violations []*Violation
}

func (c *Collector) Report(v *Violation) { c.Violations = append(c.Violations, v) }
