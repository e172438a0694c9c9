package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"lifeos/config"
	deliverycontext "lifeos/internal/delivery/context"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer, *metrics.Metrics) {
	var buf bytes.Buffer
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	cfg.Env.Debug = debug
	m := metrics.New()
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg, m).(*gormSlogLogger), &buf, m
}

func statement() (string, int64) {
	return `SELECT * FROM "documents"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("relation does not exist"), want: "GORM query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{name: "cancelled", err: context.Canceled, want: "GORM query abandoned"},
		{name: "slow", elapsed: 80 * time.Millisecond, want: "GORM slow query"},
		{name: "fast is quiet outside debug"},
		{name: "fast in debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf, _ := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), statement, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _, _ := newBufferedGormLogger(false)
	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), statement, errors.New("deadlock detected"))

	assert.Contains(t, reqBuf.String(), "request_id=req-7")
}

func TestGormSlogLogger_RecordsQueryMetrics(t *testing.T) {
	l, _, m := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), statement, nil)
	l.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)

	count, err := testutil.GatherAndCount(m.Registry(), "lifeos_db_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
