package domain

// Group is a named family group. Every group is owned by exactly one user;
// membership beyond ownership is tracked in GroupMember rows.
type Group struct {
	ID      int64
	Name    string
	UserID  int64
	Premium bool
}

// GroupMember is a membership row joining a user to a group. The pair
// (UserID, GroupID) forms the composite primary key.
type GroupMember struct {
	UserID  int64
	GroupID int64
}
