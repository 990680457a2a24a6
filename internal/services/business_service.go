package services

import (
	"context"
	"time"

	"github.com/gramseva/gramseva-backend/internal/models"
)

type BusinessService struct {
	businesses models.BusinessRepo
}

func NewBusinessService(businesses models.BusinessRepo) *BusinessService {
	return &BusinessService{
		businesses: businesses,
	}
}

func (bs *BusinessService) Create(ctx context.Context, business *models.Business, owner *models.User) (*models.Business, error) {
	business.OwnerID = owner.ID
	if err := models.Validate.Struct(business); err != nil {
		return nil, &models.ValidationError{Errors: validationMessages(err)}
	}

	business.CreatedAt = time.Now()
	if err := bs.businesses.InsertBusiness(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

func (bs *BusinessService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	return bs.businesses.FindBusinessByID(ctx, id)
}

func (bs *BusinessService) List(ctx context.Context, filter models.BusinessFilter) ([]models.Business, *models.BusinessPagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}

	businesses, total, err := bs.businesses.ListBusinesses(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return businesses, models.NewBusinessPagination(filter.Page, filter.Limit, total), nil
}

// Update applies the staged fields. Only the owner or an admin may modify a
// business.
func (bs *BusinessService) Update(ctx context.Context, id string, input models.BusinessUpdate, caller *models.User) (*models.Business, error) {
	business, err := bs.businesses.FindBusinessByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.OwnerID != caller.ID && !caller.IsAdmin() {
		return nil, models.ErrForbidden
	}

	fields := input.Fields()
	if len(fields) == 0 {
		return business, nil
	}
	if sector, ok := fields["sector"].(string); ok {
		if err := models.Validate.Var(sector, "oneof=agriculture technology manufacturing retail services healthcare education finance real_estate energy transportation food_beverage other"); err != nil {
			return nil, &models.ValidationError{Errors: []string{"`" + sector + "` is not a valid sector"}}
		}
	}
	if goal, ok := fields["funding_goal"].(float64); ok && goal <= 0 {
		return nil, &models.ValidationError{Errors: []string{"fundingGoal must be greater than zero"}}
	}
	fields["updated_at"] = time.Now()

	return bs.businesses.UpdateBusinessFields(ctx, id, fields)
}

// Delete removes a business. Only the owner or an admin may delete it.
func (bs *BusinessService) Delete(ctx context.Context, id string, caller *models.User) error {
	business, err := bs.businesses.FindBusinessByID(ctx, id)
	if err != nil {
		return err
	}
	if business.OwnerID != caller.ID && !caller.IsAdmin() {
		return models.ErrForbidden
	}
	return bs.businesses.DeleteBusiness(ctx, id)
}
