package slog

import (
	"log/slog"
	"time"

	"github.com/matthewmetros/docscrape"
)

// Ensure LoggingRegistry implements docscrape.LinkSelectorRegistry.
var _ docscrape.LinkSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a LinkSelectorRegistry with debug logging for framework detection.
type LoggingRegistry struct {
	next     docscrape.LinkSelectorRegistry
	detector docscrape.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docscrape.LinkSelectorRegistry, detector docscrape.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework docscrape.Framework) docscrape.LinkSelector {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the appropriate selector.
func (r *LoggingRegistry) GetForHTML(html string) docscrape.LinkSelector {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == docscrape.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework docscrape.Framework, selector docscrape.LinkSelector) {
	r.next.Register(framework, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []docscrape.Framework {
	return r.next.List()
}
