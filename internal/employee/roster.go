package employee

// Roster is the ordered staff list owned by a Company. The handle returned by
// Company.Staffs is live: appending to it changes the company.
type Roster struct {
	staff []*Staff
}

// Append adds staff to the end of the roster. Duplicate names are allowed.
func (r *Roster) Append(staff ...*Staff) {
	for _, s := range staff {
		if s == nil {
			continue
		}
		r.staff = append(r.staff, s)
	}
}

// Len returns the number of staff on the roster.
func (r *Roster) Len() int {
	return len(r.staff)
}

// At returns the staff member at index i, or nil when i is out of range.
func (r *Roster) At(i int) *Staff {
	if i < 0 || i >= len(r.staff) {
		return nil
	}
	return r.staff[i]
}

// All returns the roster in insertion order. The slice is a copy; the staff
// pointers are shared.
func (r *Roster) All() []*Staff {
	out := make([]*Staff, len(r.staff))
	copy(out, r.staff)
	return out
}

// Names returns every staff name in insertion order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.staff))
	for _, s := range r.staff {
		names = append(names, s.Name())
	}
	return names
}

// removeNamed drops every staff member named name and returns them in roster
// order.
func (r *Roster) removeNamed(name string) []*Staff {
	kept := make([]*Staff, 0, len(r.staff))
	var removed []*Staff
	for _, s := range r.staff {
		if s.Name() == name {
			removed = append(removed, s)
			continue
		}
		kept = append(kept, s)
	}
	r.staff = kept
	return removed
}
