package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/txn"
)

// Source yields commands one at a time, the way a real transaction source
// (a parsed script, a queue, a socket) would. command.Parse's output,
// wrapped in SliceSource, is the reference source.
type Source interface {
	// Next returns the next command and true, or a zero Command and false
	// once the source is exhausted.
	Next() (command.Command, bool)
}

// SliceSource walks a fixed slice of already-parsed commands.
type SliceSource struct {
	commands []command.Command
	pos      int
}

// NewSliceSource wraps commands, typically the output of command.Parse.
func NewSliceSource(commands []command.Command) *SliceSource {
	return &SliceSource{commands: commands}
}

func (s *SliceSource) Next() (command.Command, bool) {
	if s.pos >= len(s.commands) {
		return command.Command{}, false
	}
	cmd := s.commands[s.pos]
	s.pos++
	return cmd, true
}

// Policy controls how the driver reacts to a per-command transaction
// failure.
type Policy int

const (
	// LogAndContinue runs every command in the source, logging failures as
	// it goes, and never stops early. This is the reference policy: a
	// scripted batch of independent operations tolerates bad rows.
	LogAndContinue Policy = iota
	// StopOnFirstFailure aborts the run at the first failing command.
	StopOnFirstFailure
)

// Driver pulls commands from a Source and runs each to completion against
// a shared Ctx.
type Driver struct {
	Ctx    *txn.Ctx
	Policy Policy
	Log    *logrus.Logger
}

// New builds a driver over ctx with the given policy. A nil logger falls
// back to logrus's standard logger.
func New(ctx *txn.Ctx, policy Policy, log *logrus.Logger) *Driver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Driver{Ctx: ctx, Policy: policy, Log: log}
}

// Run drains source, executing every command's transaction. Under
// LogAndContinue it always returns nil, having logged each failure as it
// went. Under StopOnFirstFailure it returns the first error encountered.
func (d *Driver) Run(source Source) error {
	for {
		cmd, ok := source.Next()
		if !ok {
			return nil
		}
		tx := Build(cmd)
		if _, err := tx.Run(d.Ctx); err != nil {
			d.Log.WithFields(logrus.Fields{
				"command": cmd.Kind.String(),
				"emp_id":  cmd.EmployeeID,
			}).WithError(err).Warn("command failed")
			if d.Policy == StopOnFirstFailure {
				return err
			}
		}
	}
}
