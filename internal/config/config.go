// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateTraceHook returns a trace hook that logs every executed instruction
// at debug level. Tracing stays opt-in so tests and normal runs are silent.
func CreateTraceHook(logger *log.Logger) chip8.TraceFunc {
	return func(pc, opcode uint16, code string) {
		logger.Debug("Executed instruction",
			log.Hex("address", pc),
			log.Hex("opcode", opcode),
			log.String("code", code))
	}
}
