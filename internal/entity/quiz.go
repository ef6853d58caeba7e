package entity

import "time"

type Quiz struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Difficulty string    `json:"difficulty"`
	CreatedBy  int       `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
