// Package domain contains the persisted entities of the family organizer
// (User, Group, GroupMember, Calendar, Date), their validation rules, and
// the sentinel errors shared by all layers. It has no dependencies on
// adapters or infrastructure.
package domain
