package model

import "time"

// Subscriber is a newsletter subscriber. The unsubscribe token is a
// nanoid handed out on subscription and embedded in newsletter footers.
type Subscriber struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email            string    `gorm:"column:email;size:255;not null;unique" json:"email"`
	IsActive         bool      `gorm:"column:is_active;default:true" json:"is_active"`
	Source           string    `gorm:"column:source;size:100;default:website" json:"source"`
	UnsubscribeToken string    `gorm:"column:unsubscribe_token;size:30;unique" json:"-"`
	SubscribedAt     time.Time `gorm:"column:subscribed_at;autoCreateTime" json:"subscribed_at"`
}

func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}
