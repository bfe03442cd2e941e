package employee

// Staff is an employee assigned to a division.
type Staff struct {
	Employee
	division string
}

// NewStaff returns staff with empty name, zero salary and no division.
func NewStaff() *Staff {
	return &Staff{}
}

// Division returns the division label.
func (s *Staff) Division() string {
	return s.division
}

// SetDivision replaces the division label.
func (s *Staff) SetDivision(division string) {
	s.division = division
}

func (s *Staff) Release(n Notifier) {
	notify(n, Event{Kind: EventReleased, Subject: SubjectStaff, Name: s.name})
}
