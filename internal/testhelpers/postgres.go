package testhelpers

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipes/backend/config"
	"github.com/pageza/recipes/backend/internal/database"
)

// SetupPostgresDatabase starts a disposable PostgreSQL container and returns
// a connection with the recipes schema in place. The test is skipped when
// docker is not available.
func SetupPostgresDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "recipes",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start container")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to get container host")
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err, "failed to get container port")

	cfg := &config.Config{
		Env:               config.Test,
		DBDriver:          "postgres",
		DBHost:            host,
		DBPort:            mappedPort.Port(),
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBName:            "recipes",
		DBSSLMode:         "disable",
		DBMaxOpenConns:    5,
		DBMaxIdleConns:    5,
		DBConnMaxLifetime: time.Minute,
	}

	db, err := database.New(cfg, zap.NewNop())
	require.NoError(t, err, "failed to connect to database")
	require.NoError(t, database.EnsureSchema(db), "failed to create schema")

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}
