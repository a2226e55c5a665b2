package models

import "time"

// User represents an account in the credential store. Username is the
// natural key; the record is never updated after creation.
type User struct {
	ID             string    `json:"id" bson:"_id"`
	Username       string    `json:"username" bson:"username"`
	HashedPassword string    `json:"-" bson:"hashed_password"` // Never expose this to the client
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
