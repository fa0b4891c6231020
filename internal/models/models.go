package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer review as submitted; no field is required and
// nothing is validated before it is stored.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name" form:"name"`
	Rating float64            `bson:"rating" json:"rating" form:"rating"`
	Review string             `bson:"review" json:"review" form:"review"`
	Date   time.Time          `bson:"date" json:"date"`
}

// ConsultationMessage is a contact-form submission.
type ConsultationMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name" form:"name"`
	Email   string             `bson:"email" json:"email" form:"email"`
	Phone   string             `bson:"phone" json:"phone" form:"phone"`
	Message string             `bson:"message" json:"message" form:"message"`
	Date    time.Time          `bson:"date" json:"date"`
}
