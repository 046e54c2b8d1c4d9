// Package slog provides logging decorators for lawcite services using
// the standard library's structured logger.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lawcite"
)

// Ensure LoggingParser implements lawcite.Parser.
var _ lawcite.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   lawcite.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next lawcite.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(r io.Reader) (root *lawcite.Node, err error) {
	defer func(begin time.Time) {
		leaves := 0
		lawNum := ""
		if root != nil {
			leaves = root.CountLeaves()
			lawNum = root.Number
		}
		p.logger.Info("parse law",
			"law_num", lawNum,
			"leaves", leaves,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(r)
}
