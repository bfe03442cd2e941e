package employee

// Procedure is a roster operation keyed by a staff name.
type Procedure func(name string)

// WithHeadcountReport wraps proc so that, after it returns, the company's
// headcount is reported to the company notifier.
func WithHeadcountReport(c *Company, proc Procedure) Procedure {
	return func(name string) {
		proc(name)
		c.notify(Event{Kind: EventHeadcount, Headcount: c.Headcount()})
	}
}
