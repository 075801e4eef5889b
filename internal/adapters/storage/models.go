package storage

import (
	"time"

	"github.com/famapp/famapp-api/internal/domain"
)

// Schema models. Foreign keys are declared on the parent side (has-many /
// has-one) so that child inserts stay plain column writes. Ids are
// client-supplied; nothing autoincrements.

type userModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Email     string `gorm:"column:email;uniqueIndex;not null"`
	Password  string `gorm:"column:password;not null"`

	Groups      []groupModel       `gorm:"foreignKey:UserID"`
	Memberships []groupMemberModel `gorm:"foreignKey:UserID"`
	Dates       []dateModel        `gorm:"foreignKey:UserID"`
}

func (userModel) TableName() string { return "users" }

type groupModel struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name    string `gorm:"column:name;not null"`
	UserID  int64  `gorm:"column:user_id;not null;index"`
	Premium bool   `gorm:"column:premium"`

	Members  []groupMemberModel `gorm:"foreignKey:GroupID"`
	Calendar *calendarModel     `gorm:"foreignKey:GroupID"`
}

func (groupModel) TableName() string { return "groups" }

// groupMemberModel is the membership join table; the pair forms the
// composite primary key, so duplicate memberships are rejected by the store.
type groupMemberModel struct {
	UserID  int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	GroupID int64 `gorm:"column:group_id;primaryKey;autoIncrement:false"`
}

func (groupMemberModel) TableName() string { return "group_members" }

type calendarModel struct {
	ID      int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	GroupID int64 `gorm:"column:group_id;not null;index"`

	Dates []dateModel `gorm:"foreignKey:CalendarID"`
}

func (calendarModel) TableName() string { return "calendars" }

type dateModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	CalendarID int64     `gorm:"column:calendar_id;not null;index"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	StartDate  time.Time `gorm:"column:start_date;not null"`
	EndDate    time.Time `gorm:"column:end_date;not null"`
}

func (dateModel) TableName() string { return "dates" }

// Entity <-> model conversions. Field-for-field copies; association slices
// are never materialized on the domain side (related rows are fetched by
// keyed queries instead).

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}

func toDomainUser(m *userModel) domain.User {
	return domain.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Password:  m.Password,
	}
}

func toCalendarModel(c *domain.Calendar) calendarModel {
	return calendarModel{ID: c.ID, GroupID: c.GroupID}
}

func toDomainCalendar(m *calendarModel) domain.Calendar {
	return domain.Calendar{ID: m.ID, GroupID: m.GroupID}
}

func toDateModel(d *domain.Date) dateModel {
	return dateModel{
		ID:         d.ID,
		CalendarID: d.CalendarID,
		UserID:     d.UserID,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
	}
}

func toDomainDate(m *dateModel) domain.Date {
	return domain.Date{
		ID:         m.ID,
		CalendarID: m.CalendarID,
		UserID:     m.UserID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
	}
}

func toGroupModel(g *domain.Group) groupModel {
	return groupModel{
		ID:      g.ID,
		Name:    g.Name,
		UserID:  g.UserID,
		Premium: g.Premium,
	}
}

func toGroupMemberModel(m *domain.GroupMember) groupMemberModel {
	return groupMemberModel{UserID: m.UserID, GroupID: m.GroupID}
}
