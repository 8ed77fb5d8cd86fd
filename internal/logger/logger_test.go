package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"alcyxob/workout-tracker/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	log.WithField("user", "u1").Debug("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "u1", entry["user"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_TextAndBadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput(config.LogConfig{Level: "loud", Format: "TEXT"}, &buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), `msg=shown`)
}
