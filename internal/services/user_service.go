package services

import (
	"context"
	"strings"
	"time"

	"github.com/gramseva/gramseva-backend/internal/helpers"
	"github.com/gramseva/gramseva-backend/internal/models"
)

const DefaultPageLimit = 10

type UserService struct {
	users models.UserRepo
}

func NewUserService(users models.UserRepo) *UserService {
	return &UserService{
		users: users,
	}
}

func (us *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return us.users.FindByID(ctx, id)
}

// Update applies the staged fields to the user after checking that none of
// the staged unique values belongs to a different user. Unsupplied fields
// are left untouched.
func (us *UserService) Update(ctx context.Context, id string, input models.UserUpdate) (*models.User, error) {
	if errs := input.ValidationErrors(); len(errs) > 0 {
		return nil, &models.ValidationError{Errors: errs}
	}

	email := strings.ToLower(input.Email)
	if input.Username != "" || input.Email != "" || input.PhoneNo != "" {
		dup, err := us.users.FindDuplicate(ctx, id, input.Username, email, input.PhoneNo)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, &models.ConflictError{Field: updateConflictField(dup, input.Username, email, input.PhoneNo)}
		}
	}

	fields := input.Fields()
	if len(fields) == 0 {
		return us.users.FindByID(ctx, id)
	}
	fields["updated_at"] = time.Now()

	return us.users.UpdateFields(ctx, id, fields)
}

// UpdateByID is the admin variant of Update: the target must exist before
// the duplicate check runs.
func (us *UserService) UpdateByID(ctx context.Context, targetID string, input models.UserUpdate) (*models.User, error) {
	if _, err := us.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}
	return us.Update(ctx, targetID, input)
}

func (us *UserService) Delete(ctx context.Context, id string) error {
	return us.users.Delete(ctx, id)
}

// DeleteByID removes the target account on behalf of an admin. Admins may
// not remove their own account through this path.
func (us *UserService) DeleteByID(ctx context.Context, targetID, callerID string) error {
	if targetID == callerID {
		return models.ErrSelfDeletion
	}
	return us.users.Delete(ctx, targetID)
}

func (us *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}

	users, total, err := us.users.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return users, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Add creates an account on behalf of an admin. Role and gender fall back to
// their defaults when unspecified.
func (us *UserService) Add(ctx context.Context, input models.NewUser) (*models.User, error) {
	if input.Username == "" || input.PhoneNo == "" || input.Email == "" || input.Password == "" {
		return nil, models.ErrMissingFields
	}

	email := strings.ToLower(input.Email)
	dup, err := us.users.FindDuplicate(ctx, "", input.Username, email, input.PhoneNo)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, &models.ConflictError{Field: addConflictField(dup, input.Username, email, input.PhoneNo)}
	}

	user := &models.User{
		Username: input.Username,
		Email:    email,
		PhoneNo:  input.PhoneNo,
		Role:     input.Role,
		Gender:   input.Gender,
		Address:  input.Address,
	}
	if user.Role == "" {
		user.Role = models.RoleVillager
	}
	if user.Gender == "" {
		user.Gender = models.GenderUnspecified
	}
	if user.Address == nil {
		user.Address = map[string]any{}
	}
	if !models.ValidRole(user.Role) || !models.ValidGender(user.Gender) {
		update := models.UserUpdate{Role: user.Role, Gender: user.Gender}
		return nil, &models.ValidationError{Errors: update.ValidationErrors()}
	}

	hash, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.CreatedAt = time.Now()

	if err := us.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// updateConflictField names the colliding field, checked in the update
// path's priority order.
func updateConflictField(dup *models.User, username, email, phoneNo string) string {
	switch {
	case username != "" && dup.Username == username:
		return "username"
	case email != "" && dup.Email == email:
		return "email"
	case phoneNo != "" && dup.PhoneNo == phoneNo:
		return "phone number"
	}
	return "username"
}

// addConflictField names the colliding field, checked in the add path's
// priority order.
func addConflictField(dup *models.User, username, email, phoneNo string) string {
	switch {
	case email != "" && dup.Email == email:
		return "email"
	case phoneNo != "" && dup.PhoneNo == phoneNo:
		return "phone number"
	case username != "" && dup.Username == username:
		return "username"
	}
	return "email"
}
