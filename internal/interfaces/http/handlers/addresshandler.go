package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/address/dto"
	"github.com/portalkit/portalkit/internal/domain/permission"
	"github.com/portalkit/portalkit/internal/shared/constants"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type addressService interface {
	List(ctx context.Context, actor dto.Actor, forUser *uint) ([]*dto.AddressDTO, error)
	Create(ctx context.Context, actor dto.Actor, req dto.AddressRequest) (*dto.AddressDTO, error)
	Get(ctx context.Context, actor dto.Actor, id uint) (*dto.AddressDTO, error)
	Update(ctx context.Context, actor dto.Actor, id uint, req dto.AddressRequest, partial bool) (*dto.AddressDTO, error)
	HasAddress(ctx context.Context, userID uint) (bool, error)
}

type AddressHandler struct {
	addresses addressService
	policy    PolicyChecker
	logger    logger.Interface
}

func NewAddressHandler(addresses addressService, policy PolicyChecker, log logger.Interface) *AddressHandler {
	return &AddressHandler{
		addresses: addresses,
		policy:    policy,
		logger:    log,
	}
}

func (h *AddressHandler) actor(c *gin.Context) (dto.Actor, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return dto.Actor{}, false
	}
	return dto.Actor{
		UserID:       userID,
		ManageOthers: h.policy.Allowed(c, permission.ObjectOtherAccounts, permission.ActionManage),
	}, true
}

// @Summary List addresses
// @Description Staff may pass user to list another account's addresses
// @Tags Addresses
// @Produce json
// @Param user query int false "User ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.AddressDTO}
// @Router /api/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	forUser, err := utils.ParseOptionalUintQuery(c, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items, err := h.addresses.List(c.Request.Context(), actor, forUser)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// @Summary Add an address
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body dto.AddressRequest true "Address"
// @Success 201 {object} utils.APIResponse{data=dto.AddressDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /api/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	addr, err := h.addresses.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusCreated, constants.MsgAddressAdded, addr)
}

func (h *AddressHandler) Get(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseUintParam(c, "id", "address")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	addr, err := h.addresses.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", addr)
}

// Update replaces the address on PUT and merges present fields on PATCH.
func (h *AddressHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id, err := utils.ParseUintParam(c, "id", "address")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddressRequest
	if !bindJSON(c, &req) {
		return
	}

	partial := c.Request.Method == http.MethodPatch
	addr, err := h.addresses.Update(c.Request.Context(), actor, id, req, partial)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CodeResponse(c, http.StatusOK, constants.MsgAddressUpdated, addr)
}

// @Summary Whether the signed-in user has an address
// @Tags Addresses
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/addresses/check [get]
func (h *AddressHandler) Check(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	has, err := h.addresses.HasAddress(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"has_address": has})
}
