package usecases

import (
	"context"
	"fmt"

	"github.com/portalkit/portalkit/internal/application/subscription/dto"
	"github.com/portalkit/portalkit/internal/domain/subscription"
	"github.com/portalkit/portalkit/internal/shared/errors"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// ProjectionInvalidator drops memoized feature projections. The feature cache
// satisfies it.
type ProjectionInvalidator interface {
	Invalidate()
}

// maxDataTypeLength matches the feature_matrix.data_type column.
const maxDataTypeLength = 20

// FeatureMatrixUseCase lets staff read and edit the feature matrix. Every
// successful save invalidates the cached projections so the next feature
// check sees the new value.
type FeatureMatrixUseCase struct {
	matrixRepo  subscription.FeatureMatrixRepository
	invalidator ProjectionInvalidator
	logger      logger.Interface
}

func NewFeatureMatrixUseCase(
	matrixRepo subscription.FeatureMatrixRepository,
	invalidator ProjectionInvalidator,
	logger logger.Interface,
) *FeatureMatrixUseCase {
	return &FeatureMatrixUseCase{matrixRepo: matrixRepo, invalidator: invalidator, logger: logger}
}

func (uc *FeatureMatrixUseCase) List(ctx context.Context) ([]*dto.FeatureRowDTO, error) {
	rows, err := uc.matrixRepo.ListRows(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list feature matrix", "error", err)
		return nil, fmt.Errorf("failed to list feature matrix: %w", err)
	}

	out := make([]*dto.FeatureRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToFeatureRowDTO(row))
	}
	return out, nil
}

func (uc *FeatureMatrixUseCase) Save(ctx context.Context, req dto.SaveFeatureRowRequest) (*dto.FeatureRowDTO, error) {
	if len(req.DataType) > maxDataTypeLength {
		return nil, errors.NewValidationError("data_type is too long")
	}

	row, err := subscription.NewFeatureMatrixRow(req.Key, req.Name, req.DataType, map[string]*string{
		subscription.TierFree:       req.Free,
		subscription.TierBasic:      req.Basic,
		subscription.TierPro:        req.Pro,
		subscription.TierEnterprise: req.Enterprise,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.matrixRepo.Save(ctx, row); err != nil {
		uc.logger.Errorw("failed to save feature row", "key", row.Key(), "error", err)
		return nil, fmt.Errorf("failed to save feature row: %w", err)
	}
	uc.invalidator.Invalidate()

	uc.logger.Infow("feature row saved", "key", row.Key(), "data_type", row.DataType())
	return dto.ToFeatureRowDTO(row), nil
}
