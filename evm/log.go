package evm

import "go.uber.org/zap"

var log = zap.S()

// UpdateLogger replaces the package logger
func UpdateLogger(logger *zap.Logger) {
	zap.ReplaceGlobals(logger)
	log = zap.S()
}
