package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalkit/portalkit/internal/interfaces/http/handlers/testutil"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/errors"
)

func TestPasswordResetHandler_SendOTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"sent", nil, http.StatusOK, constants.MsgOTPSent},
		{"missing email", errors.NewBadRequestError("email is required").WithMessageCode(constants.MsgEmailMissing), http.StatusBadRequest, constants.MsgEmailMissing},
		{"unknown email", errors.NewNotFoundError("email not registered").WithMessageCode(constants.MsgEmailNotRegistered), http.StatusNotFound, constants.MsgEmailNotRegistered},
		{"rate limited", errors.NewRateLimitedError("too many requests"), http.StatusTooManyRequests, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPasswordResetHandler(&mockPasswordResetService{sendErr: tt.err}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/password-reset/send-otp", map[string]string{"email": "a@b.c"})
			h.SendOTP(c)

			require.Equal(t, tt.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.err == nil {
				assert.Equal(t, tt.wantCode, resp.Code)
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestPasswordResetHandler_VerifyOTPExpired(t *testing.T) {
	svc := &mockPasswordResetService{
		verifyErr: errors.NewBadRequestError("otp expired").WithMessageCode(constants.MsgOTPExpired),
	}
	h := NewPasswordResetHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/password-reset/verify-otp", map[string]string{
		"email": "a@b.c", "otp": "123456", "new_password": "newpass12", "confirm_password": "newpass12",
	})
	h.VerifyOTP(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, constants.MsgOTPExpired, resp.Error.Code)
}

func TestPasswordResetHandler_CredentialFlow(t *testing.T) {
	h := NewPasswordResetHandler(&mockPasswordResetService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/send-credentials", map[string]string{"email": "a@b.c", "username": "alice"})
	h.SendCredentials(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), constants.MsgOperationCompleted)

	c, w = testutil.NewTestContext(http.MethodPost, "/api/verify-otp-set-password", map[string]string{"username": "alice", "otp": "1", "new_password": "x"})
	h.SetPassword(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), constants.MsgPasswordSet)
}
