// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Every entry that reaches the cat's log panel is mirrored here at the level
// given by SeverityLevel, so the panel and the service log tell one story.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	sessLog := logger.ForSession(string(sess.ID()))
//	sessLog.Info("Scheduler started", zap.Duration("decay", 3*time.Second))
package logging
