package dto

import (
	subscriptionDTO "github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/user"
	"github.com/portalkit/portalkit/internal/shared/biztime"
	"github.com/portalkit/portalkit/internal/shared/mapper"
)

type RegisterRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DepartmentID *uint   `json:"department_id"`
	RoleID       *uint   `json:"role_id"`
}

// CreateUserRequest is the administrator form of registration.
type CreateUserRequest struct {
	RegisterRequest
	IsActive *bool `json:"is_active"`
	IsStaff  bool  `json:"is_staff"`
}

// UpdateUserRequest changes only the fields that are present.
type UpdateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	DepartmentID *uint   `json:"department_id"`
	RoleID       *uint   `json:"role_id"`
	IsActive     *bool   `json:"is_active"`
	Password     *string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the token pair for the cookie writer next to the body
// returned to the client.
type LoginResult struct {
	Session LoginResponse
	Tokens  Tokens
}

type LoginResponse struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	RoleID      *uint    `json:"role_id"`
	RoleName    *string  `json:"role_name"`
	Permissions []string `json:"permissions"`
	IsAdmin     bool     `json:"is_admin"`
}

type Tokens struct {
	AccessToken   string
	RefreshToken  string
	AccessMaxAge  int
	RefreshMaxAge int
}

type RefreshResult struct {
	AccessToken  string
	AccessMaxAge int
}

type UpdateProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ListUsersRequest struct {
	Page         int
	PageSize     int
	Search       string
	DepartmentID *uint
	RoleID       *uint
	Active       *bool
}

// UserDTO is the administrator view of an account.
type UserDTO struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DepartmentID *uint   `json:"department_id"`
	RoleID       *uint   `json:"role_id"`
	IsActive     bool    `json:"is_active"`
	IsStaff      bool    `json:"is_staff"`
	IsSuperuser  bool    `json:"is_superuser"`
	DateJoined   *string `json:"date_joined"`
	LastLogin    *string `json:"last_login"`
}

// ProfileDTO is what the signed-in user sees about themselves.
type ProfileDTO struct {
	ID             uint                               `json:"id"`
	Username       string                             `json:"username"`
	Email          string                             `json:"email"`
	Phone          *string                            `json:"phone"`
	FirstName      string                             `json:"first_name"`
	LastName       string                             `json:"last_name"`
	FullName       string                             `json:"full_name"`
	DepartmentID   *uint                              `json:"department_id"`
	DepartmentName *string                            `json:"department_name"`
	RoleID         *uint                              `json:"role_id"`
	RoleName       *string                            `json:"role_name"`
	IsActive       bool                               `json:"is_active"`
	IsStaff        bool                               `json:"is_staff"`
	IsSuperuser    bool                               `json:"is_superuser"`
	IsAdmin        bool                               `json:"is_admin"`
	Permissions    []string                           `json:"permissions"`
	Subscription   *subscriptionDTO.SubscriptionClaim `json:"subscription"`
	DateJoined     *string                            `json:"date_joined"`
}

type StatsDTO struct {
	TotalUsers  int64 `json:"total_users"`
	ActiveUsers int64 `json:"active_users"`
	HoldUsers   int64 `json:"hold_users"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	joined := u.DateJoined()
	return &UserDTO{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email().String(),
		Phone:        u.Phone(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		DepartmentID: u.DepartmentID(),
		RoleID:       u.RoleID(),
		IsActive:     u.IsActive(),
		IsStaff:      u.IsStaff(),
		IsSuperuser:  u.IsSuperuser(),
		DateJoined:   biztime.FormatISO(&joined),
		LastLogin:    biztime.FormatISO(u.LastLogin()),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	return mapper.MapSlicePtr(users, ToUserDTO)
}
