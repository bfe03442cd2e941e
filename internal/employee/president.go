package employee

// HonorificSuffix is appended to a president's stored name.
const HonorificSuffix = "社長"

// President is the single head of a Company. It holds a non-owning reference
// back to the company, set at construction and never reassigned.
type President struct {
	Employee
	company *Company
}

func newPresident(c *Company) *President {
	return &President{company: c}
}

// Name returns the stored name followed by HonorificSuffix.
func (p *President) Name() string {
	return p.name + HonorificSuffix
}

// Company returns the company this president serves.
func (p *President) Company() *Company {
	return p.company
}

// Dismiss removes every staff member whose name equals name exactly from the
// company roster. Dismissing an unknown name only emits the notice.
func (p *President) Dismiss(name string) {
	c := p.company
	c.releaseAll(c.roster.removeNamed(name))
	c.notify(Event{Kind: EventDismissed, Name: name})
}

func (p *President) Release(n Notifier) {
	notify(n, Event{Kind: EventReleased, Subject: SubjectPresident, Name: p.name})
}
