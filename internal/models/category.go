package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Option struct {
	Text      string `bson:"text" json:"text" validate:"required"`
	IsCorrect bool   `bson:"isCorrect" json:"isCorrect"`
}

type Question struct {
	Question string   `bson:"question" json:"question" validate:"required"`
	Options  []Option `bson:"options" json:"options" validate:"required,dive"`
	Answer   string   `bson:"answer" json:"answer" validate:"required"`
	Hint     string   `bson:"hint,omitempty" json:"hint,omitempty"`
}

type Level struct {
	LevelNumber int        `bson:"levelNumber" json:"levelNumber" validate:"required"`
	Questions   []Question `bson:"questions" json:"questions" validate:"dive"`
}

// Category is one stored math quiz category with its per-level question sets.
type Category struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	CategoryName string             `bson:"categoryName" json:"categoryName" validate:"required"`
	Levels       []Level            `bson:"levels" json:"levels" validate:"dive"`
}
