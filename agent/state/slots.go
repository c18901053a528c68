package state

// Labels used when prompting for still-missing facts, in the fixed
// discovery order.
const (
	LabelLocation     = "المكان"
	LabelBudget       = "الميزانية"
	LabelPropertyType = "نوع العقار"
)

// Reference is the value of the refers_to slot. It is set only when the
// reference resolver fires: either a copy of the last shown property, or
// the explicit unresolved sentinel (Resolved=false, Property=nil). It is
// never absent once set, so rendering always has a value to branch on.
type Reference struct {
	Resolved bool      `json:"resolved"`
	Property *Property `json:"property,omitempty"`
}

// Slots accumulates the facts known about the buyer. The recognized slots
// are enumerated as fields rather than an open-ended map; the setters for
// location, budget and property type are first-writer-wins for the life of
// the conversation.
type Slots struct {
	Location     string     `json:"location,omitempty"`
	Budget       string     `json:"budget,omitempty"`
	PropertyType string     `json:"property_type,omitempty"`
	RefersTo     *Reference `json:"refers_to,omitempty"`
	Features     []string   `json:"features,omitempty"`
}

// SetLocation stores the location unless one is already known.
// Reports whether the value was written.
func (s *Slots) SetLocation(v string) bool {
	if s.Location != "" || v == "" {
		return false
	}
	s.Location = v
	return true
}

func (s *Slots) SetBudget(v string) bool {
	if s.Budget != "" || v == "" {
		return false
	}
	s.Budget = v
	return true
}

func (s *Slots) SetPropertyType(v string) bool {
	if s.PropertyType != "" || v == "" {
		return false
	}
	s.PropertyType = v
	return true
}

// SetRefersTo binds the refers_to slot to a copy of the given property,
// or to the unresolved sentinel when none was ever shown. Unlike the other
// slots this one is rewritten on every resolver hit.
func (s *Slots) SetRefersTo(p *Property) {
	if p == nil {
		s.RefersTo = &Reference{Resolved: false}
		return
	}
	copied := *p
	s.RefersTo = &Reference{Resolved: true, Property: &copied}
}

// Complete reports whether all three required discovery slots are known.
func (s *Slots) Complete() bool {
	return s.Location != "" && s.Budget != "" && s.PropertyType != ""
}

// MissingLabels lists the labels of the still-missing required slots in
// the fixed order location, budget, property type.
func (s *Slots) MissingLabels() []string {
	var missing []string
	if s.Location == "" {
		missing = append(missing, LabelLocation)
	}
	if s.Budget == "" {
		missing = append(missing, LabelBudget)
	}
	if s.PropertyType == "" {
		missing = append(missing, LabelPropertyType)
	}
	return missing
}
