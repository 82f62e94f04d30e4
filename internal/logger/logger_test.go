package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Logger{Level: "debug", Format: "json"}.Setup()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Logger{Level: "bogus"}.Setup()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Logger{Level: "TRACE", Format: "console", NoColor: true}.Setup()
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}
