package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drawing is a saved canvas picture uploaded from the creative page.
type Drawing struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	UserID     string             `bson:"userId" json:"userId"`
	Title      string             `bson:"title" json:"title"`
	ImageURL   string             `bson:"imageUrl" json:"imageUrl"`
	Created_at time.Time          `bson:"createdAt" json:"createdAt"`
}
