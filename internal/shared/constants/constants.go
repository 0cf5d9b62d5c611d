package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"
	ContextKeyPrincipal = "principal"

	// Cookies carrying the token pair.
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)

// Message catalog codes returned to clients.
const (
	MsgUsernameExists      = "EP016"
	MsgEmailExists         = "ES003"
	MsgInvalidCredentials  = "EL001"
	MsgWrongOldPassword    = "EC001"
	MsgPasswordMismatch    = "EF003"
	MsgPasswordTooShort    = "VA008"
	MsgPasswordSameAsOld   = "VA009"
	MsgEmailNotRegistered  = "EF001"
	MsgEmailMissing        = "EF002"
	MsgOTPExpired          = "EF004"
	MsgOTPInvalid          = "EF005"
	MsgUnexpected          = "EA010"
	MsgOTPSent             = "IF001"
	MsgPasswordReset       = "IF002"
	MsgRegistered          = "IR001"
	MsgProfileUpdated      = "IP001"
	MsgPasswordSet         = "IP002"
	MsgPasswordChanged     = "ICP001"
	MsgOperationCompleted  = "IG001"
	MsgLoggedOut           = "IG002"
	MsgTokenRefreshed      = "IRF001"
	MsgDeleted             = "ID001"
	MsgAddressAdded        = "IA001"
	MsgAddressUpdated      = "IA002"
	MsgSessionLimitReached = "SESSION_LIMIT_REACHED"
	MsgUserLimitReached    = "USER_LIMIT_REACHED"
	MsgNotFound            = "GEN001"
	MsgMailFailed          = "GEN002"
	MsgDepartmentExists    = "EA003"
	MsgRoleExists          = "ER003"
	MsgFieldRequired       = "VA002"
)
