package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

func EntityToModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}

	role := model.Role(e.Role)
	if role == "" {
		role = model.RoleUser
	}

	return &model.User{
		ID:           e.ID.Hex(),
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Name:         e.Name,
		Role:         role,
		CreatedAt:    e.CreatedAt,
	}
}

func EntityFromModel(u *model.User) (*UserEntity, error) {
	if u == nil {
		return nil, nil
	}

	out := &UserEntity{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}

	if u.ID != "" {
		id, err := bson.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, model.ErrInvalidID
		}
		out.ID = id
	}

	return out, nil
}
