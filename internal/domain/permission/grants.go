package permission

import "fmt"

// UserOverride explicitly allows or denies one permission for one user.
// It beats every role and department grant.
type UserOverride struct {
	id           uint
	userID       uint
	permissionID uint
	allowed      bool
}

func NewUserOverride(userID, permissionID uint, allowed bool) (*UserOverride, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if permissionID == 0 {
		return nil, fmt.Errorf("permission ID is required")
	}
	return &UserOverride{userID: userID, permissionID: permissionID, allowed: allowed}, nil
}

func ReconstructUserOverride(id, userID, permissionID uint, allowed bool) *UserOverride {
	return &UserOverride{id: id, userID: userID, permissionID: permissionID, allowed: allowed}
}

func (o *UserOverride) ID() uint           { return o.id }
func (o *UserOverride) UserID() uint       { return o.userID }
func (o *UserOverride) PermissionID() uint { return o.permissionID }
func (o *UserOverride) Allowed() bool      { return o.allowed }
func (o *UserOverride) SetID(id uint)      { o.id = id }
func (o *UserOverride) SetAllowed(v bool)  { o.allowed = v }

// RoleGrant allows or denies one permission for every member of a role.
type RoleGrant struct {
	id           uint
	roleID       uint
	permissionID uint
	allowed      bool
}

func NewRoleGrant(roleID, permissionID uint, allowed bool) (*RoleGrant, error) {
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}
	if permissionID == 0 {
		return nil, fmt.Errorf("permission ID is required")
	}
	return &RoleGrant{roleID: roleID, permissionID: permissionID, allowed: allowed}, nil
}

func ReconstructRoleGrant(id, roleID, permissionID uint, allowed bool) *RoleGrant {
	return &RoleGrant{id: id, roleID: roleID, permissionID: permissionID, allowed: allowed}
}

func (g *RoleGrant) ID() uint           { return g.id }
func (g *RoleGrant) RoleID() uint       { return g.roleID }
func (g *RoleGrant) PermissionID() uint { return g.permissionID }
func (g *RoleGrant) Allowed() bool      { return g.allowed }
func (g *RoleGrant) SetID(id uint)      { g.id = id }
func (g *RoleGrant) SetAllowed(v bool)  { g.allowed = v }

// DepartmentGrant allows one permission for every member of a department.
// Its presence alone means allow.
type DepartmentGrant struct {
	id           uint
	departmentID uint
	permissionID uint
}

func NewDepartmentGrant(departmentID, permissionID uint) (*DepartmentGrant, error) {
	if departmentID == 0 {
		return nil, fmt.Errorf("department ID is required")
	}
	if permissionID == 0 {
		return nil, fmt.Errorf("permission ID is required")
	}
	return &DepartmentGrant{departmentID: departmentID, permissionID: permissionID}, nil
}

func ReconstructDepartmentGrant(id, departmentID, permissionID uint) *DepartmentGrant {
	return &DepartmentGrant{id: id, departmentID: departmentID, permissionID: permissionID}
}

func (g *DepartmentGrant) ID() uint           { return g.id }
func (g *DepartmentGrant) DepartmentID() uint { return g.departmentID }
func (g *DepartmentGrant) PermissionID() uint { return g.permissionID }
func (g *DepartmentGrant) SetID(id uint)      { g.id = id }

// CodenameGrant is a grant row projected onto its permission codename.
type CodenameGrant struct {
	Codename string
	Allowed  bool
}
