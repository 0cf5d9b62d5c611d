package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/shared/logger"
	"github.com/portalkit/portalkit/internal/shared/utils"
)

type featureMatrixService interface {
	ListFeatureMatrix(ctx context.Context) ([]*dto.FeatureRowDTO, error)
	SaveFeatureRow(ctx context.Context, req dto.SaveFeatureRowRequest) (*dto.FeatureRowDTO, error)
}

// FeatureMatrixHandler serves the staff-only feature matrix editor.
type FeatureMatrixHandler struct {
	matrix featureMatrixService
	logger logger.Interface
}

func NewFeatureMatrixHandler(matrix featureMatrixService, log logger.Interface) *FeatureMatrixHandler {
	return &FeatureMatrixHandler{matrix: matrix, logger: log}
}

// @Summary List feature matrix rows
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.FeatureRowDTO}
// @Failure 403 {object} utils.APIResponse
// @Router /api/feature-matrix [get]
func (h *FeatureMatrixHandler) List(c *gin.Context) {
	rows, err := h.matrix.ListFeatureMatrix(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// @Summary Create or replace a feature matrix row
// @Description Keyed by the feature key. Cached plan features are dropped on success.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body dto.SaveFeatureRowRequest true "Feature row"
// @Success 200 {object} utils.APIResponse{data=dto.FeatureRowDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/feature-matrix [put]
func (h *FeatureMatrixHandler) Save(c *gin.Context) {
	var req dto.SaveFeatureRowRequest
	if !bindJSON(c, &req) {
		return
	}

	row, err := h.matrix.SaveFeatureRow(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Feature saved", row)
}
