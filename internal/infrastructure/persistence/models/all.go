package models

// All lists every model in dependency order, for AutoMigrate in tests and
// development.
func All() []any {
	return []any{
		&DepartmentModel{},
		&RoleModel{},
		&UserModel{},
		&PermissionModel{},
		&UserPermissionOverrideModel{},
		&RolePermissionModel{},
		&DepartmentPermissionModel{},
		&PlanModel{},
		&UserSubscriptionModel{},
		&FeatureMatrixModel{},
		&AddressModel{},
		&ChatSessionModel{},
		&ChatMessageModel{},
		&OTPCodeModel{},
		&UserErrorModel{},
		&UserValidationModel{},
		&UserInformationModel{},
	}
}
