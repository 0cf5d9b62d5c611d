package migration

import "github.com/portalkit/portalkit/internal/infrastructure/persistence/models"

func AutoMigrateModels() []any {
	return models.All()
}
