package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserEntity struct {
	ID    bson.ObjectID `bson:"_id,omitempty"`
	Email string        `bson:"email"`
	// Stored under "password" for compatibility with existing documents.
	PasswordHash string    `bson:"password"`
	Name         string    `bson:"name"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}
