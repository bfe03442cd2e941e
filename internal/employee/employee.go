// Package employee models a company roster: plain employees, staff with a
// division, and a president who can dismiss staff from the company it serves.
//
// Every observable side effect (release notices, dismissal notices, headcount
// reports) is delivered as an Event to a Notifier rather than printed directly.
package employee

// Member is the capability set shared by every kind of employee.
type Member interface {
	Name() string
	SetName(name string)
	Salary() int
	SetSalary(salary int)
	Release(n Notifier)
}

var (
	_ Member = (*Employee)(nil)
	_ Member = (*Staff)(nil)
	_ Member = (*President)(nil)
)

// Employee holds a display name and a salary. Values are stored verbatim.
type Employee struct {
	name   string
	salary int
}

// NewEmployee returns an employee with an empty name and zero salary.
func NewEmployee() *Employee {
	return &Employee{}
}

// Name returns the stored name.
func (e *Employee) Name() string {
	return e.name
}

// SetName replaces the stored name.
func (e *Employee) SetName(name string) {
	e.name = name
}

// Salary returns the stored salary.
func (e *Employee) Salary() int {
	return e.salary
}

// SetSalary replaces the stored salary. Negative values are accepted.
func (e *Employee) SetSalary(salary int) {
	e.salary = salary
}

// Release emits the release notice for this employee. The owner calls it at
// the point the employee leaves its care.
func (e *Employee) Release(n Notifier) {
	notify(n, Event{Kind: EventReleased, Subject: SubjectEmployee, Name: e.name})
}
