package readdata

import "github.com/CrealityOfficial/stepfile/check"

// errorLog is an append-only page pool of diagnostic messages. It is kept
// apart from the text arena so diagnostics stay readable after the record
// graph and its interned text have been released.
type errorLog struct {
	pages    [][]string
	pageSize int
}

func (l *errorLog) add(msg string) {
	if len(l.pages) == 0 || len(l.pages[len(l.pages)-1]) == l.pageSize {
		l.pages = append(l.pages, make([]string, 0, l.pageSize))
	}
	pg := len(l.pages) - 1
	l.pages[pg] = append(l.pages[pg], msg)
}

func (l *errorLog) last() string {
	if len(l.pages) == 0 {
		return ""
	}
	page := l.pages[len(l.pages)-1]
	return page[len(page)-1]
}

func (l *errorLog) empty() bool {
	return len(l.pages) == 0
}

func (l *errorLog) each(fn func(string)) {
	for _, page := range l.pages {
		for _, msg := range page {
			fn(msg)
		}
	}
}

func (l *errorLog) clear() {
	l.pages = nil
}

// AddError appends one diagnostic to the session's error log.
func (d *ReadData) AddError(msg string) {
	d.errs.add(msg)
}

// LastError returns the most recently logged diagnostic, or "" if none.
func (d *ReadData) LastError() string {
	return d.errs.last()
}

// DrainErrors copies every logged diagnostic, in order, into c as failures.
// The log is not cleared; a second drain repeats the same messages. Reports
// whether anything was transferred.
func (d *ReadData) DrainErrors(c *check.Check) bool {
	if d.errs.empty() {
		return false
	}
	d.errs.each(c.AddFail)
	return true
}
