package services

import "log"

// Notifier receives fire-and-forget user feedback for completed operations.
// Implementations must not block and never report failures back; the caller
// has already committed the mutation by the time a notification is emitted.
type Notifier interface {
	Success(title, detail string)
	Warning(title, detail string)
}

// LogNotifier writes notifications to the process log. Used by the
// non-interactive command paths.
type LogNotifier struct{}

func (LogNotifier) Success(title, detail string) { log.Printf("%s: %s", title, detail) }
func (LogNotifier) Warning(title, detail string) { log.Printf("warning: %s: %s", title, detail) }

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Warning(string, string) {}
