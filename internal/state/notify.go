package state

import "log/slog"

// Notifier is the user-facing notification channel: every successful mutating
// operation and every failure is reported exactly once per invocation with a
// human-readable message. A UI would surface these as toasts; the default
// implementation logs them.
//
// Packed-checkbox toggles are the one exception: a patch that touches only
// the packed flag produces no success notification, so rapid checklist
// ticking does not flood the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a slog.Logger.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) Success(msg string) { n.Log.Info(msg) }
func (n LogNotifier) Error(msg string)   { n.Log.Error(msg) }

// compile-time check: LogNotifier must satisfy Notifier.
var _ Notifier = LogNotifier{}
