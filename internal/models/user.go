package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleVillager        = "villager"
	RoleAgent           = "agent"
	RolePanchayatMember = "panchayat_member"
	RoleSarpanch        = "sarpanch"
	RoleAdmin           = "admin"

	GenderMale        = "male"
	GenderFemale      = "female"
	GenderOther       = "other"
	GenderUnspecified = "prefer not to say"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	PhoneNo   string             `bson:"phone_no" json:"phoneNo" validate:"required"`
	Password  string             `bson:"password" json:"-" validate:"required"`
	Role      string             `bson:"role" json:"role" validate:"oneof=villager agent panchayat_member sarpanch admin"`
	Gender    string             `bson:"gender" json:"gender" validate:"oneof=male female other 'prefer not to say'"`
	Address   map[string]any     `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitzero"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ValidRole(role string) bool {
	switch role {
	case RoleVillager, RoleAgent, RolePanchayatMember, RoleSarpanch, RoleAdmin:
		return true
	}
	return false
}

func ValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther, GenderUnspecified:
		return true
	}
	return false
}

// NewUser carries the fields accepted when creating an account, either
// through signup or the admin add path.
type NewUser struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	PhoneNo  string         `json:"phoneNo"`
	Password string         `json:"password"`
	Role     string         `json:"role"`
	Gender   string         `json:"gender"`
	Address  map[string]any `json:"address"`
}

// UserUpdate is a partial update: only supplied fields are applied.
type UserUpdate struct {
	Username string         `json:"username"`
	PhoneNo  string         `json:"phoneNo"`
	Email    string         `json:"email"`
	Role     string         `json:"role"`
	Gender   string         `json:"gender"`
	Address  map[string]any `json:"address"`
}

// Fields returns the staged document fields keyed by their bson names.
// Email is lowercased before it is compared or stored.
func (u UserUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Username != "" {
		fields["username"] = u.Username
	}
	if u.PhoneNo != "" {
		fields["phone_no"] = u.PhoneNo
	}
	if u.Email != "" {
		fields["email"] = strings.ToLower(u.Email)
	}
	if u.Role != "" {
		fields["role"] = u.Role
	}
	if u.Gender != "" {
		fields["gender"] = u.Gender
	}
	if u.Address != nil {
		fields["address"] = u.Address
	}
	return fields
}

// ValidationErrors reports staged enum values outside the allowed sets.
func (u UserUpdate) ValidationErrors() []string {
	var errs []string
	if u.Role != "" && !ValidRole(u.Role) {
		errs = append(errs, "`"+u.Role+"` is not a valid role")
	}
	if u.Gender != "" && !ValidGender(u.Gender) {
		errs = append(errs, "`"+u.Gender+"` is not a valid gender")
	}
	return errs
}

type UserFilter struct {
	Role   string
	Search string
	Page   int
	Limit  int
}
