// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stockledger/internal/adapters/db"
	"github.com/ammerola/stockledger/internal/core/domain"
	"github.com/ammerola/stockledger/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// SetupTestDB starts a PostgreSQL container and applies the embedded migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_stockledger",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := db.DefaultConfig()
	dbConfig.Port = resource.GetPort("5432/tcp")
	dbConfig.User = "test"
	dbConfig.Password = "test"
	dbConfig.Database = "test_stockledger"
	dbConfig.MaxConnections = 5
	dbConfig.MinConnections = 1
	dbConfig.EnableQueryLogging = testing.Verbose()

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	err = db.RunMigrationsWithRetry(context.Background(), &db.MigrationConfig{
		DatabaseURL: dbConfig.URL(),
	}, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")
	t.Cleanup(func() { sqlDB.Close() })

	return mock, sqlDB
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "stockledger-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Port:           "5432",
			User:           "test",
			Password:       "test",
			Name:           "test_stockledger",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 2,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			RateLimitBurst:    100,
			RequestIDHeader:   "X-Request-ID",
			TenantHeader:      "X-Tenant-ID",
			UserHeader:        "X-User-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Inventory: config.InventoryConfig{
			DefaultPageSize:   20,
			MaxPageSize:       100,
			LowStockLimit:     10,
			DimensionCacheTTL: time.Minute,
			OrphanCounterTTL:  time.Hour,
		},
	}
}

// CreateTestVariant returns variant display data owned by ownerID
func CreateTestVariant(id, ownerID int64, overrides ...func(*domain.VariantInfo)) *domain.VariantInfo {
	variant := &domain.VariantInfo{
		ID:          id,
		Name:        fmt.Sprintf("Variant %d", id),
		ProductID:   id * 10,
		ProductName: fmt.Sprintf("Product %d", id),
		Price:       decimal.NewFromFloat(25.00),
		OwnerID:     ownerID,
	}
	for _, override := range overrides {
		override(variant)
	}
	return variant
}

// Key builds a stock key; zero size or color ids mean untracked
func Key(variantID, sizeID, colorID int64) domain.StockKey {
	key := domain.StockKey{VariantID: variantID}
	if sizeID != 0 {
		key.SizeID = domain.Tracked(sizeID)
	}
	if colorID != 0 {
		key.ColorID = domain.Tracked(colorID)
	}
	return key
}

// CatalogFixture holds the ids of a seeded catalog
type CatalogFixture struct {
	OwnerID    int64
	CategoryID int64
	ProductID  int64
	VariantIDs []int64
	SizeIDs    []int64
	ColorIDs   []int64
}

// SeedCatalog creates one product with the given number of variants, plus two sizes and two colors
func SeedCatalog(t *testing.T, database *db.Database, ownerID int64, variants int) *CatalogFixture {
	t.Helper()

	ctx := context.Background()
	catalog := db.NewCatalogRepository(database, TestLogger())
	fixture := &CatalogFixture{OwnerID: ownerID}

	var err error
	fixture.CategoryID, err = catalog.CreateCategory(ctx, "Shirts", ownerID)
	require.NoError(t, err)

	fixture.ProductID, err = catalog.CreateProduct(ctx, db.NewProduct{
		Name:       "Oxford Shirt",
		CategoryID: &fixture.CategoryID,
		OwnerID:    ownerID,
	})
	require.NoError(t, err)

	for i := 0; i < variants; i++ {
		id, err := catalog.CreateVariant(ctx, db.NewVariant{
			ProductID: fixture.ProductID,
			Name:      fmt.Sprintf("Fit %d", i+1),
			Price:     decimal.NewFromFloat(39.90),
			OwnerID:   ownerID,
		})
		require.NoError(t, err)
		fixture.VariantIDs = append(fixture.VariantIDs, id)
	}

	for _, name := range []string{"S", "M"} {
		id, err := catalog.CreateSize(ctx, name)
		require.NoError(t, err)
		fixture.SizeIDs = append(fixture.SizeIDs, id)
	}

	for _, c := range [][2]string{{"Red", "#ff0000"}, {"Blue", "#0000ff"}} {
		id, err := catalog.CreateColor(ctx, c[0], c[1])
		require.NoError(t, err)
		fixture.ColorIDs = append(fixture.ColorIDs, id)
	}

	return fixture
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	tables := []string{
		"stock_in",
		"stock_out",
		"stock_adjustments",
		"inventory_thresholds",
		"variants",
		"products",
		"categories",
		"sizes",
		"colors",
	}

	for _, table := range tables {
		_, err := pool.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
