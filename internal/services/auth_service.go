package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gramseva/gramseva-backend/internal/helpers"
	"github.com/gramseva/gramseva-backend/internal/models"
)

type AuthService struct {
	users    models.UserRepo
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users models.UserRepo, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Signup registers a new account and returns it with a signed token. Admin
// accounts cannot be self-registered.
func (as *AuthService) Signup(ctx context.Context, input models.NewUser) (*models.User, string, error) {
	if input.Username == "" || input.PhoneNo == "" || input.Email == "" || input.Password == "" {
		return nil, "", models.ErrMissingFields
	}
	if input.Role == models.RoleAdmin {
		return nil, "", &models.ValidationError{Errors: []string{"admin accounts cannot be self-registered"}}
	}
	if !helpers.IsPasswordStrong(input.Password) {
		return nil, "", &models.ValidationError{
			Errors: []string{"Password must be at least 8 characters and include upper case, lower case, a number and a special character"},
		}
	}

	email := strings.ToLower(input.Email)
	dup, err := as.users.FindDuplicate(ctx, "", input.Username, email, input.PhoneNo)
	if err != nil {
		return nil, "", err
	}
	if dup != nil {
		return nil, "", &models.ConflictError{Field: addConflictField(dup, input.Username, email, input.PhoneNo)}
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
		return nil, "", &models.ValidationError{Errors: update.ValidationErrors()}
	}

	hash, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}
	user.Password = hash
	user.CreatedAt = time.Now()

	if err := as.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := helpers.IssueToken(as.secret, user.ID.Hex(), user.Username, user.Role, as.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a signed token.
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", models.ErrInvalidCredentials
	}

	user, err := as.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := helpers.IssueToken(as.secret, user.ID.Hex(), user.Username, user.Role, as.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
