package employee

import "fmt"

// EventKind identifies the kind of roster notice.
type EventKind string

const (
	EventReleased           EventKind = "released"
	EventDismissed          EventKind = "dismissed"
	EventProcedureCompleted EventKind = "procedure_completed"
	EventHeadcount          EventKind = "headcount"
)

// Subjects carried by EventReleased.
const (
	SubjectEmployee  = "Employee"
	SubjectStaff     = "Staff"
	SubjectPresident = "President"
	SubjectCompany   = "Company"
)

// Event is a single observable side effect of the roster model.
type Event struct {
	Kind      EventKind
	Subject   string
	Name      string
	Headcount int
}

// Message renders the event as the human-readable notice shown to users.
func (e Event) Message() string {
	switch e.Kind {
	case EventReleased:
		if e.Subject == SubjectCompany {
			return "[解放通知] Companyインスタンスを解放しました"
		}
		return fmt.Sprintf("[解放通知] %sインスタンス '%s' を解放しました", e.Subject, e.Name)
	case EventDismissed:
		return fmt.Sprintf("[解雇通知] %sさんを解雇しました", e.Name)
	case EventProcedureCompleted:
		return fmt.Sprintf("[解雇手続き完了] %sさんの解雇手続きが完了しました", e.Name)
	case EventHeadcount:
		return fmt.Sprintf("現在わが社の社員数は%d人になっています", e.Headcount)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Name)
	}
}

// Notifier receives roster events.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

type discard struct{}

func (discard) Notify(Event) {}

// Discard drops every event.
var Discard Notifier = discard{}

func notify(n Notifier, e Event) {
	if n == nil {
		return
	}
	n.Notify(e)
}
