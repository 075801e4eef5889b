package domain

import "time"

// Date is a calendar event tied to one calendar and associated with one user.
type Date struct {
	ID         int64
	CalendarID int64
	UserID     int64
	StartDate  time.Time
	EndDate    time.Time
}

// Validate checks business rules for the Date entity.
func (d *Date) Validate() error {
	fields := make(map[string]string)

	if d.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if d.CalendarID <= 0 {
		fields["calendar_id"] = "must be positive"
	}
	if d.UserID <= 0 {
		fields["user_id"] = "must be positive"
	}
	if d.StartDate.IsZero() {
		fields["start_date"] = MsgRequired
	}
	if d.EndDate.IsZero() {
		fields["end_date"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
