package domain

// Calendar belongs to a group and holds zero or more dates. A group has at
// most one calendar.
type Calendar struct {
	ID      int64
	GroupID int64
}

// Validate checks business rules for the Calendar entity.
func (c *Calendar) Validate() error {
	fields := make(map[string]string)

	if c.ID <= 0 {
		fields["id"] = "must be positive"
	}
	if c.GroupID <= 0 {
		fields["group_id"] = "must be positive"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
