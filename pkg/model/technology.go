package model

import "time"

// Technology is an emerging technology the blog covers. Reference data,
// seeded once and rarely edited.
type Technology struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null;unique" json:"name"`
	Category    string    `gorm:"column:category;size:50" json:"category"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Technology) TableName() string {
	return "technologies"
}
