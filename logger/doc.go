// Package logger wraps zerolog with component-tagged, structured logging
// shared by the FinTrust auth and API services.
//
// Credential material never reaches a log line: handlers log outcomes and
// request metadata, never lookup keys, passwords, or token bodies.
package logger
