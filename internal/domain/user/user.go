package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/portalkit/portalkit/internal/domain/permission"
)

const (
	maxUsernameLength = 150
	maxPhoneLength    = 15
	maxNamePartLength = 150
)

// User is an account. Username and email are unique regardless of case; the
// stored values keep the casing the user typed.
type User struct {
	id           uint
	username     string
	email        *Email
	phone        *string
	firstName    string
	lastName     string
	passwordHash string
	departmentID *uint
	roleID       *uint
	active       bool
	staff        bool
	superuser    bool
	dateJoined   time.Time
	lastLogin    *time.Time
	updatedAt    time.Time
}

// Profile holds the user-editable contact fields.
type Profile struct {
	FirstName string
	LastName  string
	Email     *Email
	Phone     *string
}

func NewUser(username string, email *Email, passwordHash string) (*User, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, ErrEmailRequired
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		active:       true,
		dateJoined:   now,
		updatedAt:    now,
	}, nil
}

// UserData carries persisted columns into ReconstructUser.
type UserData struct {
	ID           uint
	Username     string
	Email        string
	Phone        *string
	FirstName    string
	LastName     string
	PasswordHash string
	DepartmentID *uint
	RoleID       *uint
	Active       bool
	Staff        bool
	Superuser    bool
	DateJoined   time.Time
	LastLogin    *time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from storage without re-validating the
// email, so legacy rows stay readable.
func ReconstructUser(d UserData) (*User, error) {
	if d.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	return &User{
		id:           d.ID,
		username:     d.Username,
		email:        &Email{value: d.Email},
		phone:        d.Phone,
		firstName:    d.FirstName,
		lastName:     d.LastName,
		passwordHash: d.PasswordHash,
		departmentID: d.DepartmentID,
		roleID:       d.RoleID,
		active:       d.Active,
		staff:        d.Staff,
		superuser:    d.Superuser,
		dateJoined:   d.DateJoined,
		lastLogin:    d.LastLogin,
		updatedAt:    d.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) Username() string        { return u.username }
func (u *User) Email() *Email           { return u.email }
func (u *User) Phone() *string          { return u.phone }
func (u *User) FirstName() string       { return u.firstName }
func (u *User) LastName() string        { return u.lastName }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) DepartmentID() *uint     { return u.departmentID }
func (u *User) RoleID() *uint           { return u.roleID }
func (u *User) IsActive() bool          { return u.active }
func (u *User) IsStaff() bool           { return u.staff }
func (u *User) IsSuperuser() bool       { return u.superuser }
func (u *User) DateJoined() time.Time   { return u.dateJoined }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
func (u *User) HasUsablePassword() bool { return u.passwordHash != "" }

// FullName joins first and last name, falling back to the username.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.firstName + " " + u.lastName)
	if full == "" {
		return u.username
	}
	return full
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Subject is the view of the user the permission resolver works on.
func (u *User) Subject() permission.Subject {
	return permission.Subject{
		UserID:       u.id,
		RoleID:       u.roleID,
		DepartmentID: u.departmentID,
	}
}

func (u *User) UpdateProfile(p Profile) error {
	if len(p.FirstName) > maxNamePartLength || len(p.LastName) > maxNamePartLength {
		return fmt.Errorf("name cannot exceed %d characters", maxNamePartLength)
	}
	if p.Phone != nil && len(*p.Phone) > maxPhoneLength {
		return ErrPhoneTooLong
	}

	u.firstName = strings.TrimSpace(p.FirstName)
	u.lastName = strings.TrimSpace(p.LastName)
	if p.Email != nil {
		u.email = p.Email
	}
	u.phone = p.Phone
	u.touch()
	return nil
}

func (u *User) Rename(username string) error {
	username, err := normalizeUsername(username)
	if err != nil {
		return err
	}
	u.username = username
	u.touch()
	return nil
}

// AssignOrganization sets or clears the department and role links.
func (u *User) AssignOrganization(departmentID, roleID *uint) {
	u.departmentID = departmentID
	u.roleID = roleID
	u.touch()
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

func (u *User) SetActive(active bool) {
	u.active = active
	u.touch()
}

func (u *User) ToggleActive() bool {
	u.SetActive(!u.active)
	return u.active
}

func (u *User) SetStaff(staff, superuser bool) {
	u.staff = staff
	u.superuser = superuser
	u.touch()
}

func (u *User) RecordLogin(at time.Time) {
	u.lastLogin = &at
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrUsernameRequired
	}
	if len(username) > maxUsernameLength {
		return "", fmt.Errorf("username cannot exceed %d characters", maxUsernameLength)
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return "", ErrUsernameInvalid
	}
	return username, nil
}
