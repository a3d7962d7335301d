// Package deliveryview provides read-only connectivity to the delivery view.
// The view lives in the ERP's MySQL database; SQL Server replicas are also
// supported.
package deliveryview

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/microsoft/go-mssqldb" // MS SQL Server driver
	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/domain"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/query"
	"go.uber.org/zap"
)

// Supported drivers
const (
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"
)

const (
	// Default retry configuration for connection attempts
	defaultMaxRetries     = 3
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 10 * time.Second
	defaultBackoffFactor  = 2.0

	defaultHealthCheckTimeout = 5 * time.Second
	defaultQueryTimeout       = 30 * time.Second
)

// Client runs read-only queries against the delivery view.
type Client struct {
	db           *sqlx.DB
	driver       string
	logger       *zap.Logger
	queryTimeout time.Duration
}

// HealthStatus represents the health check result for the view connection
type HealthStatus struct {
	Status     string        `json:"status"`
	Driver     string        `json:"driver,omitempty"`
	Latency    time.Duration `json:"latency_ms"`
	Error      string        `json:"error,omitempty"`
	MaxOpen    int           `json:"max_open_connections"`
	Open       int           `json:"open_connections"`
	InUse      int           `json:"in_use"`
	Idle       int           `json:"idle"`
	WaitCount  int64         `json:"wait_count"`
	WaitTimeMs int64         `json:"wait_time_ms"`
}

// NewClient connects to the delivery view with retry on transient failures.
// Returns nil when no URL is configured.
func NewClient(cfg *config.DeliveryViewConfig, loc *time.Location, logger *zap.Logger) (*Client, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Delivery view connection not configured")
		return nil, nil
	}
	if cfg.User == "" || cfg.Password == "" {
		logger.Warn("Delivery view URL set but credentials missing, skipping connection",
			zap.Bool("user_present", cfg.User != ""),
			zap.Bool("password_present", cfg.Password != ""),
		)
		return nil, nil
	}

	driver := cfg.Driver
	if driver == "" {
		driver = DriverMySQL
	}

	logger.Info("Initializing delivery view connection",
		zap.String("driver", driver),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
		zap.Int("conn_max_lifetime_seconds", cfg.ConnMaxLifetime),
		zap.Int("query_timeout_seconds", cfg.QueryTimeout),
	)

	dsn, err := BuildDSN(driver, cfg, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	var db *sqlx.DB
	backoff := defaultInitialBackoff

	for attempt := 1; attempt <= defaultMaxRetries; attempt++ {
		logger.Info("Attempting delivery view connection",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultMaxRetries),
		)

		db, err = sqlx.Open(driver, dsn)
		if err != nil {
			logger.Warn("Failed to open delivery view connection",
				zap.Error(err),
				zap.Int("attempt", attempt),
			)
			if attempt < defaultMaxRetries {
				time.Sleep(backoff)
				backoff = min(time.Duration(float64(backoff)*defaultBackoffFactor), defaultMaxBackoff)
			}
			continue
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

		ctx, cancel := context.WithTimeout(context.Background(), defaultHealthCheckTimeout)
		err = db.PingContext(ctx)
		cancel()

		if err != nil {
			logger.Warn("Delivery view ping failed",
				zap.Error(err),
				zap.Int("attempt", attempt),
			)
			_ = db.Close()
			if attempt < defaultMaxRetries {
				time.Sleep(backoff)
				backoff = min(time.Duration(float64(backoff)*defaultBackoffFactor), defaultMaxBackoff)
			}
			continue
		}

		logger.Info("Delivery view connection established successfully",
			zap.Int("attempts_taken", attempt),
		)
		return NewFromDB(db, driver, cfg.QueryTimeoutDuration(), logger), nil
	}

	return nil, fmt.Errorf("failed to connect to delivery view after %d attempts: %w", defaultMaxRetries, err)
}

// NewFromDB wraps an open connection. driver selects the placeholder style.
func NewFromDB(db *sqlx.DB, driver string, queryTimeout time.Duration, logger *zap.Logger) *Client {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &Client{db: db, driver: driver, logger: logger, queryTimeout: queryTimeout}
}

// BuildDSN constructs the driver connection string.
// URL format expected: host:port/database or host:port
func BuildDSN(driver string, cfg *config.DeliveryViewConfig, loc *time.Location) (string, error) {
	urlParts := strings.SplitN(cfg.URL, "/", 2)
	hostPort := urlParts[0]
	database := ""
	if len(urlParts) > 1 {
		database = urlParts[1]
	}
	if hostPort == "" {
		return "", fmt.Errorf("missing host in %q", cfg.URL)
	}

	hostParts := strings.SplitN(hostPort, ":", 2)
	host := hostParts[0]

	switch driver {
	case DriverMySQL:
		port := "3306"
		if len(hostParts) > 1 {
			port = hostParts[1]
		}
		if loc == nil {
			loc = time.UTC
		}
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = host + ":" + port
		mc.DBName = database
		mc.ParseTime = true
		mc.Loc = loc
		mc.Timeout = 30 * time.Second
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil

	case DriverSQLServer:
		port := "1433"
		if len(hostParts) > 1 {
			port = hostParts[1]
		}
		q := url.Values{}
		q.Add("encrypt", "true")
		q.Add("TrustServerCertificate", "false")
		q.Add("connection timeout", "30")
		if database != "" {
			q.Add("database", database)
		}
		u := &url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     fmt.Sprintf("%s:%s", host, port),
			RawQuery: q.Encode(),
		}
		return u.String(), nil
	}
	return "", fmt.Errorf("unsupported driver: %s", driver)
}

// Driver returns the driver name used for parameter binding
func (c *Client) Driver() string {
	return c.driver
}

// Close gracefully closes the connection pool.
func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	c.logger.Info("Closing delivery view connection")
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close delivery view connection", zap.Error(err))
		return fmt.Errorf("failed to close delivery view connection: %w", err)
	}
	return nil
}

// HealthCheck pings the view and reports pool statistics.
func (c *Client) HealthCheck(ctx context.Context) *HealthStatus {
	if c == nil || c.db == nil {
		return &HealthStatus{Status: "disabled"}
	}

	start := time.Now()
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultHealthCheckTimeout)
		defer cancel()
	}

	err := c.db.PingContext(ctx)
	latency := time.Since(start)

	stats := c.db.Stats()
	status := &HealthStatus{
		Driver:     c.driver,
		Latency:    latency,
		MaxOpen:    stats.MaxOpenConnections,
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		WaitCount:  stats.WaitCount,
		WaitTimeMs: stats.WaitDuration.Milliseconds(),
	}
	if err != nil {
		c.logger.Warn("Delivery view health check failed",
			zap.Error(err),
			zap.Duration("latency", latency),
		)
		status.Status = "unhealthy"
		status.Error = err.Error()
	} else {
		status.Status = "healthy"
	}
	return status
}

// Query binds q for the client's driver and returns every row. Columns keep
// their order and duplicates.
func (c *Client) Query(ctx context.Context, q query.Query) (*normalize.RawRows, error) {
	if c == nil || c.db == nil {
		return nil, &domain.QueryExecutionError{Op: "query delivery view", Err: domain.ErrViewUnavailable}
	}
	text, args := q.Text, []interface{}(nil)
	if len(q.Params) > 0 {
		var err error
		text, args, err = q.Bind(c.driver)
		if err != nil {
			return nil, &domain.QueryExecutionError{Op: "bind query", Err: err}
		}
	}
	return c.QueryText(ctx, text, args...)
}

// QueryText runs a query that is already in the driver's placeholder style.
func (c *Client) QueryText(ctx context.Context, text string, args ...interface{}) (*normalize.RawRows, error) {
	if c == nil || c.db == nil {
		return nil, &domain.QueryExecutionError{Op: "query delivery view", Err: domain.ErrViewUnavailable}
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	c.logger.Debug("Executing delivery view query",
		zap.String("query", truncateQuery(text, 200)),
		zap.Int("args_count", len(args)),
	)

	start := time.Now()

	rows, err := c.db.QueryxContext(ctx, text, args...)
	if err != nil {
		c.logger.Error("Delivery view query failed",
			zap.Error(err),
			zap.String("query", truncateQuery(text, 200)),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, &domain.QueryExecutionError{Op: "query delivery view", Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &domain.QueryExecutionError{Op: "read columns", Err: err}
	}

	out := &normalize.RawRows{Columns: columns, Values: [][]interface{}{}}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &domain.QueryExecutionError{Op: "scan row", Err: err}
		}
		out.Values = append(out.Values, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.QueryExecutionError{Op: "iterate rows", Err: err}
	}

	c.logger.Debug("Delivery view query completed",
		zap.Int("rows_returned", len(out.Values)),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// IsEnabled returns true if the client is initialized and ready for queries.
func (c *Client) IsEnabled() bool {
	return c != nil && c.db != nil
}

// truncateQuery truncates a query string for logging purposes
func truncateQuery(query string, maxLen int) string {
	if len(query) <= maxLen {
		return query
	}
	return query[:maxLen] + "..."
}
