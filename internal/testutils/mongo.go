package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupMongoForIntegration returns a throwaway database for integration
// tests. It is skipped unless INTEGRATION=1. TEST_MONGO_URI points it at an
// external server; otherwise a container is started.
func SetupMongoForIntegration(t *testing.T) *mongo.Database {
	t.Helper()

	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION=1 to run Mongo integration tests")
	}

	ctx := context.Background()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
		}
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			t.Fatalf("start mongo container: %v", err)
		}
		t.Cleanup(func() {
			_ = container.Terminate(context.Background())
		})

		host, err := container.Host(ctx)
		if err != nil {
			t.Fatal(err)
		}
		port, err := container.MappedPort(ctx, "27017")
		if err != nil {
			t.Fatal(err)
		}
		uri = fmt.Sprintf("mongodb://%s:%s/", host, port.Port())
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	name := fmt.Sprintf("survey_test_%d", time.Now().UnixNano())
	database := client.Database(name)
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
	})
	return database
}
