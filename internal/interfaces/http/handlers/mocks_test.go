package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	addressdto "github.com/portalkit/portalkit/internal/application/address/dto"
	chatdto "github.com/portalkit/portalkit/internal/application/chat/dto"
	resetdto "github.com/portalkit/portalkit/internal/application/passwordreset/dto"
	permdto "github.com/portalkit/portalkit/internal/application/permission/dto"
	subdto "github.com/portalkit/portalkit/internal/application/subscription/dto"
	userdto "github.com/portalkit/portalkit/internal/application/user/dto"
)

// =====================================================================
// Accounts
// =====================================================================

type mockAccountService struct {
	registerResult *userdto.UserDTO
	registerErr    error
	loginResult    *userdto.LoginResult
	loginErr       error
	refreshResult  *userdto.RefreshResult
	refreshErr     error
	refreshToken   string
	exists         bool
	existsErr      error
	existsValue    string
}

func (m *mockAccountService) Register(ctx context.Context, req userdto.RegisterRequest) (*userdto.UserDTO, error) {
	return m.registerResult, m.registerErr
}

func (m *mockAccountService) Login(ctx context.Context, req userdto.LoginRequest) (*userdto.LoginResult, error) {
	return m.loginResult, m.loginErr
}

func (m *mockAccountService) Refresh(ctx context.Context, refreshToken string) (*userdto.RefreshResult, error) {
	m.refreshToken = refreshToken
	return m.refreshResult, m.refreshErr
}

func (m *mockAccountService) UsernameExists(ctx context.Context, username string) (bool, error) {
	m.existsValue = username
	return m.exists, m.existsErr
}

func (m *mockAccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	m.existsValue = email
	return m.exists, m.existsErr
}

// =====================================================================
// Permissions
// =====================================================================

type mockPermissionService struct {
	permissionAdminService
	checkResult *permdto.CheckResult
	checkErr    error
	checked     string
	deletedID   uint
	deleteErr   error
}

func (m *mockPermissionService) HasPermission(ctx context.Context, userID uint, codename string) (*permdto.CheckResult, error) {
	m.checked = codename
	return m.checkResult, m.checkErr
}

func (m *mockPermissionService) DeleteRoleGrant(ctx context.Context, id uint) error {
	m.deletedID = id
	return m.deleteErr
}

// =====================================================================
// Subscriptions
// =====================================================================

type mockSubscriptionService struct {
	plans        []*subdto.PlanDTO
	subscribed   *subdto.SubscriptionDTO
	subscribeErr error
	claim        *subdto.SubscriptionClaim
	history      []*subdto.SubscriptionDTO
	lastRequest  subdto.SubscribeRequest
	lastUserID   uint
}

func (m *mockSubscriptionService) ListPlans(ctx context.Context) ([]*subdto.PlanDTO, error) {
	return m.plans, nil
}

func (m *mockSubscriptionService) Subscribe(ctx context.Context, userID uint, req subdto.SubscribeRequest) (*subdto.SubscriptionDTO, error) {
	m.lastUserID = userID
	m.lastRequest = req
	return m.subscribed, m.subscribeErr
}

func (m *mockSubscriptionService) CurrentSubscription(ctx context.Context, userID uint) (*subdto.SubscriptionClaim, error) {
	return m.claim, nil
}

func (m *mockSubscriptionService) History(ctx context.Context, userID uint) ([]*subdto.SubscriptionDTO, error) {
	return m.history, nil
}

type mockFeatureMatrixService struct {
	rows    []*subdto.FeatureRowDTO
	saved   *subdto.FeatureRowDTO
	saveErr error
	lastReq subdto.SaveFeatureRowRequest
}

func (m *mockFeatureMatrixService) ListFeatureMatrix(ctx context.Context) ([]*subdto.FeatureRowDTO, error) {
	return m.rows, nil
}

func (m *mockFeatureMatrixService) SaveFeatureRow(ctx context.Context, req subdto.SaveFeatureRowRequest) (*subdto.FeatureRowDTO, error) {
	m.lastReq = req
	return m.saved, m.saveErr
}

// =====================================================================
// Addresses
// =====================================================================

type mockAddressService struct {
	actor      addressdto.Actor
	forUser    *uint
	partial    bool
	result     *addressdto.AddressDTO
	list       []*addressdto.AddressDTO
	hasAddress bool
	err        error
}

func (m *mockAddressService) List(ctx context.Context, actor addressdto.Actor, forUser *uint) ([]*addressdto.AddressDTO, error) {
	m.actor = actor
	m.forUser = forUser
	return m.list, m.err
}

func (m *mockAddressService) Create(ctx context.Context, actor addressdto.Actor, req addressdto.AddressRequest) (*addressdto.AddressDTO, error) {
	m.actor = actor
	return m.result, m.err
}

func (m *mockAddressService) Get(ctx context.Context, actor addressdto.Actor, id uint) (*addressdto.AddressDTO, error) {
	m.actor = actor
	return m.result, m.err
}

func (m *mockAddressService) Update(ctx context.Context, actor addressdto.Actor, id uint, req addressdto.AddressRequest, partial bool) (*addressdto.AddressDTO, error) {
	m.actor = actor
	m.partial = partial
	return m.result, m.err
}

func (m *mockAddressService) HasAddress(ctx context.Context, userID uint) (bool, error) {
	return m.hasAddress, m.err
}

type stubPolicy struct {
	allowed bool
}

func (s stubPolicy) Allowed(c *gin.Context, object, action string) bool {
	return s.allowed
}

// =====================================================================
// Chat
// =====================================================================

type mockChatService struct {
	sessions []*chatdto.SessionDTO
	session  *chatdto.SessionDTO
	messages []*chatdto.MessageDTO
	reply    *chatdto.SendMessageResponse
	err      error
}

func (m *mockChatService) ListSessions(ctx context.Context, userID uint) ([]*chatdto.SessionDTO, error) {
	return m.sessions, m.err
}

func (m *mockChatService) CreateSession(ctx context.Context, userID uint, req chatdto.CreateSessionRequest) (*chatdto.SessionDTO, error) {
	return m.session, m.err
}

func (m *mockChatService) Messages(ctx context.Context, userID, sessionID uint) ([]*chatdto.MessageDTO, error) {
	return m.messages, m.err
}

func (m *mockChatService) DeleteSession(ctx context.Context, userID, sessionID uint) error {
	return m.err
}

func (m *mockChatService) Send(ctx context.Context, userID, sessionID uint, req chatdto.SendMessageRequest) (*chatdto.SendMessageResponse, error) {
	return m.reply, m.err
}

// =====================================================================
// Password reset
// =====================================================================

type mockPasswordResetService struct {
	sendErr   error
	verifyErr error
	credErr   error
	setErr    error
}

func (m *mockPasswordResetService) SendOTP(ctx context.Context, req resetdto.SendOTPRequest) error {
	return m.sendErr
}

func (m *mockPasswordResetService) VerifyOTP(ctx context.Context, req resetdto.VerifyOTPRequest) error {
	return m.verifyErr
}

func (m *mockPasswordResetService) SendCredentials(ctx context.Context, req resetdto.SendCredentialsRequest) error {
	return m.credErr
}

func (m *mockPasswordResetService) SetPassword(ctx context.Context, req resetdto.SetPasswordRequest) error {
	return m.setErr
}
