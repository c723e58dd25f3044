package cmd

import (
	"errors"

	"go.uber.org/zap"

	"github.com/alexiusacademia/rcdetail/internal/document"
	"github.com/alexiusacademia/rcdetail/internal/model"
)

var errNoDocument = errors.New("no beam document given, use --file")

// loadDevelopment reads the document named by --file and logs whatever the
// normalization pass had to replace.
func loadDevelopment() (model.Development, error) {
	if docPath == "" {
		return model.Development{}, errNoDocument
	}
	dev, warnings, err := document.Load(docPath)
	if err != nil {
		return model.Development{}, err
	}
	for _, w := range warnings {
		logger.Warn("Document value replaced", zap.String("path", w.Path), zap.String("reason", w.Message))
	}
	logger.Debug("Document loaded",
		zap.String("file", docPath),
		zap.Int("spans", len(dev.Spans)),
		zap.Int("nodes", len(dev.Nodes)),
		zap.Float64("unit_scale", dev.Settings.UnitScale))
	return dev, nil
}
