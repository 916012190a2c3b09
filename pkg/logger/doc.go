// Package logger provides a small factory around Go's slog package plus
// attribute helpers that keep key names consistent across the module.
//
// New creates a *slog.Logger configured by Option functions:
//
//   • WithFormat – output format, json or text.
//   • WithLevel – minimum level; ParseLevel converts strings from config.
//   • WithOutput / WithDiscard – destination (stderr by default).
//   • WithAttr – static attributes on every record.
//
// Helper constructors such as Path, TypeTag, Count, Group, Error and Panic
// live in attr.go.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithFormat(logger.FormatText),
//	)
//	log.Warn("validator fault",
//	    logger.Path("bar[0].fizz"),
//	    logger.TypeTag("custom"),
//	)
//
// # Error Handling
//
// Error and Panic produce attributes only for non-nil values, so
//
//	log.Info("loaded schema", logger.Error(err))
//
// needs no additional nil check.
package logger
