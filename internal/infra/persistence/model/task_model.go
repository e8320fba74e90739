package model

import "time"

// TaskModel mirrors the 'tasks' table. Description and Completed carry
// database-level defaults so a bare insert matches the API contract.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Completed   bool   `gorm:"not null;default:false"`
	UserID      int64  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
