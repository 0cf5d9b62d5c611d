package permission

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

//go:embed model.conf
var defaultModel string

var _ permission.PolicyEnforcer = (*Enforcer)(nil)

// Enforcer evaluates the admin route policy stored in casbin_rule.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer loads the model from modelPath, or the embedded model when the
// path is empty.
func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", constants.TableCasbinRules)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	var m model.Model
	if modelPath != "" {
		m, err = model.NewModelFromFile(modelPath)
	} else {
		m, err = model.NewModelFromString(defaultModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Enforce allows the request when any subject of the principal is allowed.
func (e *Enforcer) Enforce(p permission.Principal, object, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, subject := range p.Subjects() {
		allowed, err := e.enforcer.Enforce(subject, object, action)
		if err != nil {
			e.logger.Errorw("policy check failed", "error", err, "user_id", p.UserID, "subject", subject, "object", object, "action", action)
			return false, fmt.Errorf("policy check failed: %w", err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}

// SeedDefaults installs the built-in policy. Staff inherit the role-admin
// grants, superusers inherit staff, and every role listed in adminRoleNames
// is a role admin. Existing rules are left alone.
func (e *Enforcer) SeedDefaults(adminRoleNames []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	policies := [][]string{
		{permission.SubjectRoleAdmin, permission.ObjectUsers, permission.ActionManage},
		{permission.SubjectRoleAdmin, permission.ObjectOrganization, permission.ActionManage},
		{permission.SubjectRoleAdmin, permission.ObjectCredentials, permission.ActionManage},
		{permission.SubjectStaff, permission.ObjectOrgStatus, permission.ActionManage},
		{permission.SubjectStaff, permission.ObjectPermissions, permission.ActionManage},
		{permission.SubjectStaff, permission.ObjectOtherAccounts, permission.ActionManage},
		{permission.SubjectStaff, permission.ObjectFeatureMatrix, permission.ActionManage},
	}
	groupings := [][]string{
		{permission.SubjectSuperuser, permission.SubjectStaff},
		{permission.SubjectStaff, permission.SubjectRoleAdmin},
	}
	for _, name := range adminRoleNames {
		groupings = append(groupings, []string{permission.RoleSubject(name), permission.SubjectRoleAdmin})
	}

	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			e.logger.Errorw("failed to add policy", "error", err, "subject", policy[0], "object", policy[1])
			return fmt.Errorf("failed to add policy %v: %w", policy, err)
		}
	}
	for _, g := range groupings {
		if _, err := e.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			e.logger.Errorw("failed to add grouping policy", "error", err, "member", g[0], "group", g[1])
			return fmt.Errorf("failed to add grouping %v: %w", g, err)
		}
	}

	e.logger.Infow("route policy seeded", "admin_roles", adminRoleNames)
	return nil
}

func (e *Enforcer) AddPolicy(subject, object, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(subject, object, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(subject, object, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(subject, object, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Infow("policy reloaded successfully")
	return nil
}
