// Package logging builds the file-backed logger used in verbose mode.
//
// The TUI owns the terminal, so diagnostics go to a log file under the
// config directory instead of stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"policyadvisor/internal/config"
)

// NewLogger returns a logger writing to the advisor log file when verbose
// is enabled, and a nop logger otherwise.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	if _, err := config.EnsureConfigDir(); err != nil {
		return nil, err
	}

	logPath, err := config.GetLogPath()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
