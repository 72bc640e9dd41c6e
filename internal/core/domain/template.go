package domain

// Template is a named, reusable posting skeleton for pre-filling a register
// entry. Amounts are often blank at save time, so no balance invariant is
// enforced on templates.
type Template struct {
	TemplateID  string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Type        RegisterType `json:"type"`
	Description string       `json:"description"`
	Postings    []Posting    `json:"postings"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	t.Postings = ClonePostings(t.Postings)
	return t
}

// CloneTemplates deep-copies a template list.
func CloneTemplates(templates []Template) []Template {
	if templates == nil {
		return nil
	}
	out := make([]Template, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}
