package http

import (
	"gorm.io/gorm"

	"github.com/portalkit/portalkit/internal/infrastructure/repository"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo          *repository.UserRepository
	departmentRepo    *repository.DepartmentRepository
	roleRepo          *repository.RoleRepository
	permissionRepo    *repository.PermissionRepository
	userOverrideRepo  *repository.UserOverrideRepository
	roleGrantRepo     *repository.RoleGrantRepository
	deptGrantRepo     *repository.DepartmentGrantRepository
	planRepo          *repository.PlanRepository
	subscriptionRepo  *repository.UserSubscriptionRepository
	featureMatrixRepo *repository.FeatureMatrixRepository
	addressRepo       *repository.AddressRepository
	chatSessionRepo   *repository.ChatSessionRepository
	chatMessageRepo   *repository.ChatMessageRepository
	messageRepo       *repository.MessageRepository
	otpRepo           *repository.OTPCodeRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db, log),
		departmentRepo:    repository.NewDepartmentRepository(db, log),
		roleRepo:          repository.NewRoleRepository(db, log),
		permissionRepo:    repository.NewPermissionRepository(db, log),
		userOverrideRepo:  repository.NewUserOverrideRepository(db, log),
		roleGrantRepo:     repository.NewRoleGrantRepository(db, log),
		deptGrantRepo:     repository.NewDepartmentGrantRepository(db, log),
		planRepo:          repository.NewPlanRepository(db, log),
		subscriptionRepo:  repository.NewUserSubscriptionRepository(db, log),
		featureMatrixRepo: repository.NewFeatureMatrixRepository(db, log),
		addressRepo:       repository.NewAddressRepository(db, log),
		chatSessionRepo:   repository.NewChatSessionRepository(db, log),
		chatMessageRepo:   repository.NewChatMessageRepository(db, log),
		messageRepo:       repository.NewMessageRepository(db, log),
		otpRepo:           repository.NewOTPCodeRepository(db, log),
	}
}
