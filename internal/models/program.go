package models

// ProgramDay is one calendar day of the active program window.
type ProgramDay struct {
	Date              string       `json:"date"` // locale label, e.g. "11 Haz"
	Bootcamp          Activity     `json:"bootcamp"`
	BootcampDone      bool         `json:"bootcampDone"`
	Sport             Activity     `json:"sport"`
	SportDone         bool         `json:"sportDone"`
	TransferPlus      TransferSlot `json:"transferPlus"`
	TransferPlusValue *float64     `json:"transferPlusValue"` // hours, nil when unset
	TransferPlusDone  bool         `json:"transferPlusDone"`
	Note              string       `json:"note"`
}

// HasApplicable reports whether the day has a bootcamp or sport slot to complete.
func (d ProgramDay) HasApplicable() bool {
	return d.Bootcamp.IsApplicable() || d.Sport.IsApplicable()
}

// CountsTowardStreak reports whether at least one applicable activity is done.
func (d ProgramDay) CountsTowardStreak() bool {
	return (d.BootcampDone && d.Bootcamp.IsApplicable()) || (d.SportDone && d.Sport.IsApplicable())
}

// AllApplicableDone reports whether the day has applicable activities and all of them are done.
func (d ProgramDay) AllApplicableDone() bool {
	if !d.HasApplicable() {
		return false
	}
	if d.Bootcamp.IsApplicable() && !d.BootcampDone {
		return false
	}
	if d.Sport.IsApplicable() && !d.SportDone {
		return false
	}
	return true
}

// Clone returns a deep copy; the TransferPlusValue pointer is not shared.
func (d ProgramDay) Clone() ProgramDay {
	c := d
	if d.TransferPlusValue != nil {
		v := *d.TransferPlusValue
		c.TransferPlusValue = &v
	}
	return c
}

// CloneDays copies a whole sequence.
func CloneDays(days []ProgramDay) []ProgramDay {
	if days == nil {
		return nil
	}
	out := make([]ProgramDay, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}
