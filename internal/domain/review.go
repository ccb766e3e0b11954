package domain

import "time"

type Review struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	UserName     string    `json:"userName,omitempty"`
	UserAvatar   string    `json:"userAvatar,omitempty"`
	ProductID    int64     `json:"productId"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	Verified     bool      `json:"verified"`
	HelpfulCount int       `json:"helpfulCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
