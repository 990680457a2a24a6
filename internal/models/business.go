package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Business struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Sector      string             `bson:"sector" json:"sector" validate:"required,oneof=agriculture technology manufacturing retail services healthcare education finance real_estate energy transportation food_beverage other"`
	FundingGoal float64            `bson:"funding_goal" json:"fundingGoal" validate:"required,gt=0"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	OwnerID     primitive.ObjectID `bson:"owner_id" json:"ownerId"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitzero"`
}

// BusinessUpdate is a partial update; nil numeric pointers mean "unchanged".
type BusinessUpdate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sector      string   `json:"sector"`
	FundingGoal *float64 `json:"fundingGoal"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (b BusinessUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if b.Name != "" {
		fields["name"] = b.Name
	}
	if b.Description != "" {
		fields["description"] = b.Description
	}
	if b.Sector != "" {
		fields["sector"] = b.Sector
	}
	if b.FundingGoal != nil {
		fields["funding_goal"] = *b.FundingGoal
	}
	if b.Latitude != nil {
		fields["latitude"] = *b.Latitude
	}
	if b.Longitude != nil {
		fields["longitude"] = *b.Longitude
	}
	return fields
}

type BusinessFilter struct {
	Sector string
	Search string
	Page   int
	Limit  int
}

// BusinessPagination describes one page of the business listing.
type BusinessPagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalBusinesses int64 `json:"totalBusinesses"`
	HasNext         bool  `json:"hasNext"`
	HasPrev         bool  `json:"hasPrev"`
}

func NewBusinessPagination(page, limit int, total int64) *BusinessPagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &BusinessPagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalBusinesses: total,
		HasNext:         page < totalPages,
		HasPrev:         page > 1,
	}
}
