package influx_test

import (
	"context"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/influx"
	"github.com/catgar/catgar/internal/logging"
)

// testConfig targets a local dev InfluxDB instance.
func testConfig() *config.Config {
	return &config.Config{
		InfluxURL:    "http://127.0.0.1:8086",
		InfluxToken:  "catgar-dev-token",
		InfluxOrg:    "catgar",
		InfluxBucket: "garmin-test",
	}
}

func quietLogger() *logging.Logger {
	return logging.New("error", "text")
}

// skipIfNoInfluxDB skips the test when no local InfluxDB is reachable.
func skipIfNoInfluxDB(t *testing.T) *influx.Client {
	t.Helper()
	client, err := influx.Connect(testConfig(), quietLogger())
	if err != nil {
		t.Skip("InfluxDB not available, skipping integration test")
	}
	return client
}

func TestConnect(t *testing.T) {
	client := skipIfNoInfluxDB(t)
	defer client.Close()

	assert.Equal(t, "garmin-test", client.Bucket())
}

func TestEnsureBucketAndWrite(t *testing.T) {
	client := skipIfNoInfluxDB(t)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.EnsureBucket(ctx))

	day := time.Now().UTC().Truncate(24 * time.Hour)
	pt := write.NewPoint("daily_stats", nil,
		map[string]any{"steps": 12345.0}, day)
	require.NoError(t, client.WritePoints(ctx, []*write.Point{pt}))

	values, err := client.FieldValues(ctx, "daily_stats", "steps", 1)
	require.NoError(t, err)
	assert.Contains(t, values, 12345.0)

	count, err := client.PointCount(ctx, "daily_stats", 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))
}

func TestConnect_BadURL(t *testing.T) {
	cfg := testConfig()
	cfg.InfluxURL = "http://127.0.0.1:1"

	_, err := influx.Connect(cfg, quietLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, influx.ErrConnectionFailed)
}
