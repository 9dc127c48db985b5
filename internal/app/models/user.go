package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64    `json:"id" db:"id" gorm:"primaryKey"`
	Name     string   `json:"name" db:"name" gorm:"size:150;uniqueIndex;not null"`
	Password string   `json:"-" db:"password" gorm:"size:255;not null"` // bcrypt hash
	RoleType RoleType `json:"role" db:"role" gorm:"column:role;size:50"`
}

// TableName pins the gorm table name to the one used by the SQL migrations
func (User) TableName() string {
	return "users"
}
