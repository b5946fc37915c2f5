package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromEnv_DevIsDebugLevel(t *testing.T) {
	log := NewFromEnv("dev")
	assert.Equal(t, DebugLevel, log.GetLevel())
}

func TestNewFromEnv_ProdIsInfoLevel(t *testing.T) {
	log := NewFromEnv("prod")
	assert.Equal(t, InfoLevel, log.GetLevel())
}

func TestLogger_NamedAccumulatesDotPath(t *testing.T) {
	log := NewTestLogger()
	child := log.Named("orderbook").Named("engine")
	assert.Equal(t, "orderbook.engine", child.name)
}

func TestLogger_SetLevelAffectsClone(t *testing.T) {
	log := NewTestLogger()
	log.SetLevel(ErrorLevel)

	clone := log.Clone()
	assert.Equal(t, ErrorLevel, clone.GetLevel())

	clone.SetLevel(DebugLevel)
	assert.Equal(t, ErrorLevel, log.GetLevel())
}
