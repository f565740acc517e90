package models

import "time"

type Blog struct {
	ID          string    `json:"id" db:"blog_id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Content     string    `json:"content" db:"content"`
	Excerpt     string    `json:"excerpt" db:"excerpt"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	Author      string    `json:"author" db:"author"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
