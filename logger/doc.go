// Package logger provides structured logging for golinq using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields. Console colour is turned
// off automatically when the output is not a terminal.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("engine")
//	log.Debug("drain finished", logger.Fields(logger.FieldExecuted, 3))
package logger
