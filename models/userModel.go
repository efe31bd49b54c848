package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username   *string            `bson:"username" json:"username" validate:"required,min=2,max=50"`
	Password   *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
	User_id    string             `bson:"user_id" json:"user_id"`
}
