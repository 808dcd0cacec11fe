package leads_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/leads/pkg/leadsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for leads API end-to-end tests.
 * This includes container setup and assertions.
 */

const (
	testImageName = "leads-api-test:latest"

	signingSecret = "e2e-signing-secret-0123456789abcdef"
	adminUsername = "admin"
	adminPassword = "Admin123!"
	issuer        = "leads-e2e"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building leads API Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up leads API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/leads/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every test. Rate limits are
// relaxed because tests issue many rapid requests from one address.
func baseEnv() map[string]string {
	return map[string]string{
		"LEADS_SIGNING_SECRET": signingSecret,
		"LEADS_ISSUER":         issuer,
		"LEADS_DATABASE_FILE":  "/tmp/leads.db",
		"LEADS_PEPPER_FILE":    "/tmp/pepper",
		"LEADS_ADMIN_USERNAME": adminUsername,
		"LEADS_ADMIN_PASSWORD": adminPassword,
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",

		"LEADS_RATELIMIT_LOGIN_REQUESTS":  "1000",
		"LEADS_RATELIMIT_LOGIN_BURST":     "1000",
		"LEADS_RATELIMIT_SUBMIT_REQUESTS": "1000",
		"LEADS_RATELIMIT_SUBMIT_BURST":    "1000",
		"LEADS_RATELIMIT_READ_REQUESTS":   "1000",
		"LEADS_RATELIMIT_READ_BURST":      "1000",
	}
}

// setupLeadsContainer starts the API with baseEnv plus overrides and returns
// its base URL. An override with an empty value removes the variable.
func setupLeadsContainer(t *testing.T, overrides map[string]string) string {
	t.Helper()
	ctx := context.Background()

	env := baseEnv()
	for k, v := range overrides {
		if v == "" {
			delete(env, k)
			continue
		}
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// login authenticates as the seeded admin.
func login(t *testing.T, client *leadsdk.Client) *leadsdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotEmpty(t, session.Token())

	return session
}

// assertAPIError checks err is an API error with the given status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, leadsdk.NewAPIError(status, code), "got: %v", err)
}

func assertHealthy(t *testing.T, health *leadsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
