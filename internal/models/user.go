package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	First_name *string            `bson:"firstName" json:"firstName" validate:"max=100,required"`
	Last_name  *string            `bson:"lastName" json:"lastName" validate:"max=100,required"`
	Email      *string            `bson:"email" json:"email" validate:"email,required"`
	Password   *string            `bson:"password" json:"password" validate:"required,min=6"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}
