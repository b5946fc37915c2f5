package logging

import "go.uber.org/zap"

// Field constructors re-exported so callers only ever import the
// logging package, never zap directly.
func String(key, val string) zap.Field { return zap.String(key, val) }

func Uint64(key string, val uint64) zap.Field { return zap.Uint64(key, val) }

func Uint32(key string, val uint32) zap.Field { return zap.Uint32(key, val) }

func Int(key string, val int) zap.Field { return zap.Int(key, val) }

func Bool(key string, val bool) zap.Field { return zap.Bool(key, val) }

func Error(err error) zap.Field { return zap.Error(err) }
