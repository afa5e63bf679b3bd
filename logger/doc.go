// Package logger provides structured logging for the authcrypt
// collaborator layer using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// The codec packages themselves never log.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("middleware")
//	log.Info("token decoded", logger.Fields("source", "cookie"))
package logger
