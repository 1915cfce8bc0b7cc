package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCoverImage is used when a story is saved without a cover.
const DefaultCoverImage = "https://images.unsplash.com/photo-1472396961693-142e6e269027"

type Story struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Title      string             `bson:"title" json:"title" validate:"required"`
	Content    string             `bson:"content" json:"content" validate:"required"`
	CoverImage string             `bson:"coverImage" json:"coverImage"`
	Category   string             `bson:"category" json:"category"`
	AgeRange   string             `bson:"ageRange" json:"ageRange"`
	Created_at time.Time          `bson:"createdAt" json:"createdAt"`
}

// ApplyDefaults fills the optional story fields the same way the story
// collection expects them: an Unsplash cover, the "Fantasy" category and the
// "5-8" age range.
func (s *Story) ApplyDefaults() {
	if s.CoverImage == "" {
		s.CoverImage = DefaultCoverImage
	}
	if s.Category == "" {
		s.Category = "Fantasy"
	}
	if s.AgeRange == "" {
		s.AgeRange = "5-8"
	}
}
