package models

import "time"

type Clown struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
