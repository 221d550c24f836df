package types

type RunMode string

const (
	// ModeLocal is the mode for local development and scripts
	ModeLocal RunMode = "local"
	// ModeEmbedded is the mode for running inside a host application
	ModeEmbedded RunMode = "embedded"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
)
