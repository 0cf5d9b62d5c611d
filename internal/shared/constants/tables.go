package constants

// Table names. The message tables keep their historical names.
const (
	TableUsers                   = "users"
	TableDepartments             = "departments"
	TableRoles                   = "roles"
	TablePermissions             = "permissions"
	TableUserPermissionOverrides = "user_permission_overrides"
	TableRolePermissions         = "role_permissions"
	TableDepartmentPermissions   = "department_permissions"
	TableSubscriptionPlans       = "subscription_plan"
	TableUserSubscriptions       = "user_subscriptions"
	TableFeatureMatrix           = "subscription_feature_matrix"
	TableAddresses               = "addresses"
	TableChatSessions            = "chat_sessions"
	TableChatMessages            = "chat_messages"
	TableOTPCodes                = "otp_codes"
	TableUserError               = "user_error"
	TableUserValidation          = "user_validation"
	TableUserInformation         = "user_information"
	TableCasbinRules             = "casbin_rule"
)
