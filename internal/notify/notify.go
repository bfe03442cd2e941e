// Package notify delivers roster events to the console, the journal, or
// several sinks at once.
package notify

import (
	"fmt"
	"io"

	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/logbook"
)

// Console prints each event's message on its own line.
func Console(w io.Writer) employee.Notifier {
	return employee.NotifierFunc(func(e employee.Event) {
		fmt.Fprintln(w, e.Message())
	})
}

// Journal appends each event's message to book at INFO level.
func Journal(book *logbook.Logbook) employee.Notifier {
	return employee.NotifierFunc(func(e employee.Event) {
		book.Info("%s", e.Message())
	})
}

type fanout []employee.Notifier

func (f fanout) Notify(e employee.Event) {
	for _, n := range f {
		n.Notify(e)
	}
}

// Fanout delivers every event to each non-nil notifier in order.
func Fanout(notifiers ...employee.Notifier) employee.Notifier {
	out := make(fanout, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
