// Package logger provides slog attribute helpers and logger construction for
// the auth core.
//
// Attribute helpers use the empty Attr pattern for nil safety, so call sites
// can write log.Info("msg", logger.Error(err)) without explicit nil checks:
//
//	log := logger.New("production")
//	log.Info("session renewed",
//		logger.Component("session.manager"),
//		logger.ID("user_id", userID),
//	)
package logger
