package models

import "time"

// Event is a calendar entry. Events are not owned by any user.
type Event struct {
	ID    int64     `json:"id" db:"id" gorm:"primaryKey"`
	Title string    `json:"title" db:"title" gorm:"size:100;not null"`
	Date  time.Time `json:"date" db:"date" gorm:"not null"`
}

// TableName pins the gorm table name to the one used by the SQL migrations
func (Event) TableName() string {
	return "events"
}

// FormattedDate returns Date in EventDateLayout
func (e *Event) FormattedDate() string {
	return e.Date.Format(EventDateLayout)
}
