package tui

// Entry is one transient notification shown on the status line.
type Entry struct {
	Title   string
	Detail  string
	Warning bool
}

// Feed collects notifications emitted by the repositories so the status line
// can show the most recent ones. It implements services.Notifier. The TUI
// event loop is the only writer, so no locking is needed.
type Feed struct {
	entries []Entry
	max     int
}

func NewFeed(max int) *Feed {
	if max <= 0 {
		max = 5
	}
	return &Feed{max: max}
}

func (f *Feed) Success(title, detail string) { f.push(Entry{Title: title, Detail: detail}) }

func (f *Feed) Warning(title, detail string) {
	f.push(Entry{Title: title, Detail: detail, Warning: true})
}

// Latest returns the most recent notification, if any.
func (f *Feed) Latest() (Entry, bool) {
	if len(f.entries) == 0 {
		return Entry{}, false
	}
	return f.entries[len(f.entries)-1], true
}

func (f *Feed) push(e Entry) {
	f.entries = append(f.entries, e)
	if len(f.entries) > f.max {
		f.entries = f.entries[1:]
	}
}
