// Package influx wraps the InfluxDB v2 client for catgar.
//
// It provides connection management with a connect-time ping, blocking
// point writes (this is a batch job, not a streaming service), target
// bucket provisioning, and the Flux queries behind the summary command.
package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/influxdata/influxdb-client-go/v2/domain"

	"github.com/catgar/catgar/internal/config"
	"github.com/catgar/catgar/internal/logging"
)

const (
	defaultConnectTimeout = 10 * time.Second
)

// Client wraps the InfluxDB v2 client.
type Client struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	queryAPI api.QueryAPI

	org    string
	bucket string
	log    *logging.Logger
}

// Connect creates a client and verifies connectivity with a ping.
func Connect(cfg *config.Config, log *logging.Logger) (*Client, error) {
	client := influxdb2.NewClient(cfg.InfluxURL, cfg.InfluxToken)

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrConnectionFailed, cfg.InfluxURL, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server at %s not healthy", ErrConnectionFailed, cfg.InfluxURL)
	}

	return &Client{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		queryAPI: client.QueryAPI(cfg.InfluxOrg),
		org:      cfg.InfluxOrg,
		bucket:   cfg.InfluxBucket,
		log:      log.With("component", "influx"),
	}, nil
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}

// EnsureBucket creates the target bucket with infinite retention when it
// does not exist. An existing bucket with a finite retention rule only
// produces a warning so the operator can adjust it.
func (c *Client) EnsureBucket(ctx context.Context) error {
	bucketsAPI := c.client.BucketsAPI()

	existing, err := bucketsAPI.FindBucketByName(ctx, c.bucket)
	if err == nil && existing != nil {
		for _, rule := range existing.RetentionRules {
			if rule.EverySeconds > 0 {
				c.log.Warn("bucket has finite retention; data may be dropped",
					"bucket", c.bucket, "retention_seconds", rule.EverySeconds)
			}
		}
		return nil
	}

	org, err := c.client.OrganizationsAPI().FindOrganizationByName(ctx, c.org)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOrgNotFound, c.org, err)
	}

	// EverySeconds=0 means infinite retention.
	_, err = bucketsAPI.CreateBucketWithName(ctx, org, c.bucket,
		domain.RetentionRule{EverySeconds: 0})
	if err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", c.bucket, err)
	}

	c.log.Info("created bucket with infinite retention", "bucket", c.bucket)
	return nil
}

// WritePoints writes a batch of points synchronously.
func (c *Client) WritePoints(ctx context.Context, pts []*write.Point) error {
	if len(pts) == 0 {
		return nil
	}
	if err := c.writeAPI.WritePoint(ctx, pts...); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Close releases the underlying client. Pending writes are already flushed
// because the write API is blocking.
func (c *Client) Close() {
	c.client.Close()
}
