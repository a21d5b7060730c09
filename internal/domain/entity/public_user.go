// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// PublicUser is the externally safe projection of a User. It carries only
// the attributes a caller may see; PasswordHash never crosses into it.
// The persisted User entity is never mutated for display purposes.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
}

// NewPublicUser builds the public projection from a persisted User.
func NewPublicUser(user *User) *PublicUser {
	if user == nil {
		return nil
	}

	return &PublicUser{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
	}
}

// NewPublicUsers maps a slice of persisted Users to their public projections.
func NewPublicUsers(users []*User) []*PublicUser {
	result := make([]*PublicUser, 0, len(users))
	for _, user := range users {
		result = append(result, NewPublicUser(user))
	}

	return result
}
