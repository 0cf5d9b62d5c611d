package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permdto "github.com/portalkit/portalkit/internal/application/permission/dto"
	"github.com/portalkit/portalkit/internal/interfaces/http/handlers/testutil"
	"github.com/portalkit/portalkit/internal/shared/errors"
)

func TestPermissionHandler_HasPermission(t *testing.T) {
	t.Run("decision with reason", func(t *testing.T) {
		svc := &mockPermissionService{checkResult: &permdto.CheckResult{Has: true, Reason: "role_allowed"}}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/permissions/has_permission", nil)
		testutil.SetAuthContext(c, 1)
		testutil.SetQueryParams(c, map[string]string{"codename": "reports.view"})
		h.HasPermission(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "reports.view", svc.checked)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var result permdto.CheckResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.True(t, result.Has)
		assert.Equal(t, "role_allowed", result.Reason)
	})

	t.Run("missing codename", func(t *testing.T) {
		svc := &mockPermissionService{}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/permissions/has_permission", nil)
		testutil.SetAuthContext(c, 1)
		h.HasPermission(c)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.checked)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var result permdto.CheckResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.False(t, result.Has)
		assert.Equal(t, "codename_missing", result.Reason)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "codename is required", resp.Error.Detail)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewPermissionHandler(&mockPermissionService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/permissions/has_permission?codename=x", nil)
		h.HasPermission(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPermissionHandler_DeleteRoleGrant(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &mockPermissionService{}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/role-permissions/9", nil)
		testutil.SetURLParam(c, "id", "9")
		h.DeleteRoleGrant(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, uint(9), svc.deletedID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockPermissionService{deleteErr: errors.NewNotFoundError("role permission not found")}
		h := NewPermissionHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/role-permissions/9", nil)
		testutil.SetURLParam(c, "id", "9")
		h.DeleteRoleGrant(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h := NewPermissionHandler(&mockPermissionService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/role-permissions/abc", nil)
		testutil.SetURLParam(c, "id", "abc")
		h.DeleteRoleGrant(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
