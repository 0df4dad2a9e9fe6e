package entity

import (
	"time"
)

// Game is a catalog entry. CategoryIDs holds plain Category document IDs;
// there is no foreign-key enforcement, so a game can carry references to
// categories that no longer exist.
type Game struct {
	ID          int64     `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	CategoryIDs []string  `json:"categoryIds" firestore:"categoryIds"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
