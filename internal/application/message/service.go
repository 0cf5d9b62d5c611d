// Package message serves the client message catalog.
package message

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/message/dto"
	"github.com/portalkit/portalkit/internal/application/message/usecases"
	domainMessage "github.com/portalkit/portalkit/internal/domain/message"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

type ServiceDDD struct {
	getUC *usecases.GetMessagesUseCase
}

func NewServiceDDD(repo domainMessage.Repository, defaults domainMessage.Catalog, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{getUC: usecases.NewGetMessagesUseCase(repo, defaults, logger)}
}

func (s *ServiceDDD) Messages(ctx context.Context) *dto.MessagesDTO {
	return s.getUC.Execute(ctx)
}

func (s *ServiceDDD) Text(ctx context.Context, code string) string {
	return s.getUC.Text(ctx, code)
}
