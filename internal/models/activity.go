package models

import (
	"encoding/json"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

// ActivityKind is the day-activity status of a bootcamp or sport slot.
type ActivityKind int

const (
	ActivityNone          ActivityKind = iota // nothing scheduled ("-")
	ActivityNotApplicable                     // activity does not apply today ("Yok")
	ActivityHoliday                           // holiday ("Tatil")
	ActivityScheduled                         // a real label
)

// Activity separates what a slot means from how it is displayed.
// On the wire it is the single string the views show.
type Activity struct {
	Kind  ActivityKind
	Label string
}

func NoActivity() Activity { return Activity{Kind: ActivityNone} }
func NotApplicable() Activity { return Activity{Kind: ActivityNotApplicable} }
func Holiday() Activity { return Activity{Kind: ActivityHoliday} }
func Scheduled(label string) Activity { return Activity{Kind: ActivityScheduled, Label: label} }

// ParseActivity maps a display string back to its status. Empty strings read as "none".
func ParseActivity(s string) Activity {
	switch s {
	case "", constants.SentinelNone:
		return NoActivity()
	case constants.SentinelNotApplicable:
		return NotApplicable()
	case constants.SentinelHoliday:
		return Holiday()
	default:
		return Scheduled(s)
	}
}

// IsApplicable reports whether the slot holds something the user can complete.
func (a Activity) IsApplicable() bool {
	return a.Kind == ActivityScheduled
}

func (a Activity) String() string {
	switch a.Kind {
	case ActivityNotApplicable:
		return constants.SentinelNotApplicable
	case ActivityHoliday:
		return constants.SentinelHoliday
	case ActivityScheduled:
		return a.Label
	default:
		return constants.SentinelNone
	}
}

func (a Activity) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseActivity(s)
	return nil
}

// TransferSlot marks whether TransferPlus hours may be logged for a day.
type TransferSlot int

const (
	TransferOpen TransferSlot = iota
	TransferHoliday
)

func (t TransferSlot) String() string {
	if t == TransferHoliday {
		return constants.SentinelHoliday
	}
	return ""
}

func (t TransferSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransferSlot) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == constants.SentinelHoliday {
		*t = TransferHoliday
	} else {
		*t = TransferOpen
	}
	return nil
}
