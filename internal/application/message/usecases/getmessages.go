package usecases

import (
	"context"

	"github.com/portalkit/portalkit/internal/application/message/dto"
	"github.com/portalkit/portalkit/internal/domain/message"
	"github.com/portalkit/portalkit/internal/shared/logger"
)

// GetMessagesUseCase serves the built-in catalog overlaid with database
// rows. An unreadable database degrades to the built-in catalog.
type GetMessagesUseCase struct {
	repo     message.Repository
	defaults message.Catalog
	logger   logger.Interface
}

func NewGetMessagesUseCase(repo message.Repository, defaults message.Catalog, logger logger.Interface) *GetMessagesUseCase {
	if defaults == nil {
		defaults = message.NewCatalog()
	}
	return &GetMessagesUseCase{repo: repo, defaults: defaults, logger: logger}
}

func (uc *GetMessagesUseCase) Execute(ctx context.Context) *dto.MessagesDTO {
	return dto.ToMessagesDTO(uc.catalog(ctx))
}

// Text resolves one code, falling back to the generic text of its kind.
func (uc *GetMessagesUseCase) Text(ctx context.Context, code string) string {
	kind, ok := message.KindForCode(code)
	if !ok {
		kind = message.KindError
	}
	entry, err := uc.repo.Find(ctx, kind, code)
	if err != nil {
		uc.logger.Warnw("failed to read message", "code", code, "error", err)
	}
	if entry != nil {
		return entry.Text
	}
	if text, ok := uc.defaults.Lookup(kind, code); ok {
		return text
	}
	return message.FallbackText(kind)
}

func (uc *GetMessagesUseCase) catalog(ctx context.Context) message.Catalog {
	stored, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.logger.Warnw("failed to read message tables, serving defaults", "error", err)
		stored = nil
	}
	return message.Merge(uc.defaults, stored)
}
