package appcontext

import (
	"github.com/PulchraScientia/BDAstudio-demo2/internal/catalog"
	"github.com/PulchraScientia/BDAstudio-demo2/internal/session"
	"go.uber.org/zap"
)

// Context carries the process-wide dependencies handed to every handler.
// Per-user state lives in Sessions; nothing here is request-scoped.
type Context struct {
	Logger   *zap.Logger
	Sessions *session.Manager
	Catalog  *catalog.Catalog

	Environment  string
	SeedDemoData bool
}
