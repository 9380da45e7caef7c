package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/autoparts-inventory/internal/model"
	"github.com/you-humble/autoparts-inventory/internal/transport/http/dto"
)

func IdentityToMeResponse(id *model.Identity) dto.MeResponse {
	return dto.MeResponse{
		UserID: id.UserID,
		Name:   id.Name,
		Role:   string(id.Role),
	}
}

func UsersToResponse(users []*model.User) dto.UsersResponse {
	return dto.UsersResponse{
		Users: lo.Map(users, func(u *model.User, _ int) dto.User {
			return dto.User{
				ID:        u.ID,
				Email:     u.Email,
				Name:      u.Name,
				Role:      string(u.Role),
				CreatedAt: u.CreatedAt.UTC(),
			}
		}),
	}
}

func CreateUserRequestToParams(req dto.CreateUserRequest) model.CreateUserParams {
	return model.CreateUserParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     model.Role(req.Role),
	}
}
