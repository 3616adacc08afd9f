package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ghais/option"
)

func TestField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logger.Info(
		"request",
		option.Field("subject", option.Some("user")),
		option.Field("session", option.None[string]()),
	)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)

	context := entries[0].ContextMap()

	assert.Equal(t, "user", context["subject"])

	session, ok := context["session"]
	assert.True(t, ok)
	assert.Nil(t, session)
}
