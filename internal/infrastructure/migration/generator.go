package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/portalkit/portalkit/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator writes empty script skeletons for both tools. Scripts are
// embedded, so the binary must be rebuilt to pick them up.
type Generator struct {
	scriptsPath string
	now         func() time.Time
	logger      logger.Interface
}

// NewGenerator takes the directory holding the goose and migrate folders.
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		now:         time.Now,
		logger:      logger.WithComponent("migration.generator"),
	}
}

// CreateMigration returns the paths written.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	version := g.now().UTC().Format("20060102150405")
	files := map[string]string{
		filepath.Join(g.scriptsPath, "goose", fmt.Sprintf("%s_%s.sql", version, name)):         "-- +goose Up\n\n-- +goose Down\n",
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.up.sql", version, name)):   "-- " + name + "\n",
		filepath.Join(g.scriptsPath, "migrate", fmt.Sprintf("%s_%s.down.sql", version, name)): "-- rollback " + name + "\n",
	}

	written := make([]string, 0, len(files))
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("failed to create scripts directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	g.logger.Infow("migration files created", "name", name, "files", written)
	return written, nil
}
