package executor

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/suisei-entertainment/sde/internal/builder"
	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
)

// OpenDocsExecutor opens the built development documentation in the
// default browser.
type OpenDocsExecutor struct {
	docPath string
	runner  builder.CommandRunner
	logger  logging.Logger
}

// NewOpenDocsExecutor creates a new opendocs executor.
func NewOpenDocsExecutor(docPath string, runner builder.CommandRunner, logger logging.Logger) *OpenDocsExecutor {
	return &OpenDocsExecutor{
		docPath: docPath,
		runner:  runner,
		logger:  logger,
	}
}

// Execute opens the documentation index. The documentation has to be built
// first with the documentation component.
func (e *OpenDocsExecutor) Execute(ctx context.Context) error {
	if _, err := os.Stat(e.docPath); err != nil {
		return errors.NewIOError("opendocs_not_found",
			"documentation was not found on the local system, it was probably "+
				"not built yet. Execute sde build documentation first", err)
	}

	var opener string
	switch runtime.GOOS {
	case "darwin":
		opener = "open"
	default:
		opener = "xdg-open"
	}

	return e.runner.Run(ctx, ".", fmt.Sprintf("%s %q", opener, e.docPath))
}
