package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"product_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	CategoryID  gocql.UUID `json:"category_id"`
	ImageURLs   []string   `json:"image_urls"`
	Variants    []string   `json:"variants,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Category struct {
	ID   gocql.UUID `json:"category_id"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`
}
