package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"television/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRedactSecrets(t *testing.T) {
	insert := `INSERT INTO "provider_tokens" ("user_id","access_token") VALUES ('u','secret') ON CONFLICT DO NOTHING`
	assert.Equal(t, `INSERT INTO "provider_tokens" ("user_id","access_token") VALUES [redacted]`, redactSecrets(insert))

	update := `UPDATE "provider_tokens" SET "refresh_token"='secret' WHERE user_id = 'u'`
	assert.Equal(t, `UPDATE "provider_tokens" SET "refresh_token"='secret' WHERE [redacted]`, redactSecrets(update))

	plain := `SELECT * FROM "live_games" ORDER BY start_time ASC`
	assert.Equal(t, plain, redactSecrets(plain))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})

	sqlFn := func() (string, int64) { return `SELECT 1`, 1 }

	t.Run("record not found is ignored", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged with component", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "GORM query failed", record["msg"])
		assert.Equal(t, "gorm", record["component"])
		assert.Equal(t, "boom", record["error"])
	})

	t.Run("slow queries warn", func(t *testing.T) {
		buf.Reset()
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})
}
