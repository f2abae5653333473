package log

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	t.Cleanup(SetupTestLogger)

	Configure(Options{Level: "warn", File: filepath.Join(t.TempDir(), "dashboard.log")})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Configure(Options{Level: "nível-inexistente"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	SetupTestLogger()

	base := L.(*logger)

	filtered := L.WithFields(Fields{"irrelevante": 1}).(*logger)
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"branch": "Norte", "irrelevante": 1}).(*logger)
	assert.Contains(t, kept.entry.Data, "branch")
	assert.NotContains(t, kept.entry.Data, "irrelevante")
}
