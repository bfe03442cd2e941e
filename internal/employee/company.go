package employee

// Option customizes Company construction.
type Option func(*Company)

// WithNotifier routes company events to n. A nil notifier is ignored.
func WithNotifier(n Notifier) Option {
	return func(c *Company) {
		if n != nil {
			c.notifier = n
		}
	}
}

// Company owns a roster of staff and exactly one president.
type Company struct {
	roster    *Roster
	president *President
	notifier  Notifier
	closed    bool
}

// New creates a company with an empty roster and its president.
func New(opts ...Option) *Company {
	c := &Company{
		roster:   &Roster{},
		notifier: Discard,
	}
	c.president = newPresident(c)
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Staffs returns the live roster.
func (c *Company) Staffs() *Roster {
	return c.roster
}

// President returns the company's president. It is never nil.
func (c *Company) President() *President {
	return c.president
}

// Headcount counts the staff plus the president.
func (c *Company) Headcount() int {
	return c.roster.Len() + 1
}

// PerformDismissalProcedure removes every staff member named name, exactly as
// President.Dismiss does, and then reports the resulting headcount.
func (c *Company) PerformDismissalProcedure(name string) {
	WithHeadcountReport(c, c.dismissalProcedure)(name)
}

func (c *Company) dismissalProcedure(name string) {
	c.releaseAll(c.roster.removeNamed(name))
	c.notify(Event{Kind: EventProcedureCompleted, Name: name})
}

// Close releases the remaining staff in roster order, then the president,
// then the company itself. Calling Close again does nothing.
func (c *Company) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.releaseAll(c.roster.All())
	c.president.Release(c.notifier)
	c.notify(Event{Kind: EventReleased, Subject: SubjectCompany})
}

func (c *Company) releaseAll(staff []*Staff) {
	for _, s := range staff {
		s.Release(c.notifier)
	}
}

func (c *Company) notify(e Event) {
	notify(c.notifier, e)
}
