package mappers

import (
	"fmt"

	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/infrastructure/persistence/models"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

// UserMapper handles the conversion between user entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(user.UserData{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		Phone:        model.Phone,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		PasswordHash: model.PasswordHash,
		DepartmentID: model.DepartmentID,
		RoleID:       model.RoleID,
		Active:       model.IsActive,
		Staff:        model.IsStaff,
		Superuser:    model.IsSuperuser,
		DateJoined:   model.DateJoined,
		LastLogin:    model.LastLogin,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

// ToModel fills the folded lookup keys from the display values.
func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	email := entity.Email().String()
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		UsernameKey:  utils.FoldKey(entity.Username()),
		Email:        email,
		EmailKey:     utils.FoldKey(email),
		Phone:        entity.Phone(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		PasswordHash: entity.PasswordHash(),
		DepartmentID: entity.DepartmentID(),
		RoleID:       entity.RoleID(),
		IsActive:     entity.IsActive(),
		IsStaff:      entity.IsStaff(),
		IsSuperuser:  entity.IsSuperuser(),
		DateJoined:   entity.DateJoined(),
		LastLogin:    entity.LastLogin(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *userMapper) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
