package models

import "errors"

var (
	ErrDayOutOfRange      = errors.New("day index out of range")
	ErrNotApplicable      = errors.New("activity is not scheduled for this day")
	ErrTransferPlusLocked = errors.New("transferPlus is locked on holidays")
	ErrNegativeHours      = errors.New("hours cannot be negative")
)
