package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Game struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Genre        string             `bson:"genre" json:"genre"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Video        string             `bson:"video,omitempty" json:"video,omitempty"`
	Rating       float64            `bson:"rating" json:"rating"`
	Type         string             `bson:"type" json:"type"`
	DownloadLink string             `bson:"downloadLink" json:"downloadLink"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateGameRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Genre        string  `json:"genre" validate:"required"`
	Image        string  `json:"image"`
	Video        string  `json:"video"`
	Rating       float64 `json:"rating" validate:"required"`
	Type         string  `json:"type" validate:"required"`
	DownloadLink string  `json:"downloadLink" validate:"required"`
}

// UpdateGameRequest carries partial updates. Nil fields are left untouched.
type UpdateGameRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Genre        *string  `json:"genre"`
	Image        *string  `json:"image"`
	Video        *string  `json:"video"`
	Rating       *float64 `json:"rating"`
	Type         *string  `json:"type"`
	DownloadLink *string  `json:"downloadLink"`
}

// Changes returns the bson field names and values that were supplied.
func (r *UpdateGameRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Genre != nil {
		changes["genre"] = *r.Genre
	}
	if r.Image != nil {
		changes["image"] = *r.Image
	}
	if r.Video != nil {
		changes["video"] = *r.Video
	}
	if r.Rating != nil {
		changes["rating"] = *r.Rating
	}
	if r.Type != nil {
		changes["type"] = *r.Type
	}
	if r.DownloadLink != nil {
		changes["downloadLink"] = *r.DownloadLink
	}
	return changes
}
