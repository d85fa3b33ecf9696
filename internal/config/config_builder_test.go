package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()

	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsAreValid verifies that the built-in defaults alone form a
// valid configuration with a derived base URL.
func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Server.BaseURL)
	assert.Equal(t, DefaultProviderBaseURL, cfg.Provider.BaseURL)
	assert.Equal(t, DefaultDemoURL, cfg.Demo.URL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Zero(t, cfg.Provider.RequestTimeout)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that non-zero fields of later
// layers win over earlier ones while zero fields keep earlier values.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 8080}},
		&StructuredConfig{Provider: Provider{APIKey: "key", SecretKey: "secret"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, "key", cfg.Provider.APIKey)
	assert.Equal(t, "secret", cfg.Provider.SecretKey)
	assert.Equal(t, DefaultProviderBaseURL, cfg.Provider.BaseURL)
}

// TestBuild_KeepsExplicitBaseURL verifies that a configured base URL is not
// replaced by the derived localhost one.
func TestBuild_KeepsExplicitBaseURL(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{BaseURL: "https://relay.example.com"}})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://relay.example.com", cfg.Server.BaseURL)
}

// TestBuild_ValidationError verifies that validation runs on the merged result.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Provider: Provider{BaseURL: "not a url"}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidProviderConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that a missing .env file does
// not set b.err.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))

	assert.NoError(t, b.err)
}

// TestWithDotEnv_LoadsVariables verifies that values from the file become
// visible to the env layer.
func TestWithDotEnv_LoadsVariables(t *testing.T) {
	t.Setenv("MONNIFY_API_KEY", "")
	require.NoError(t, os.Unsetenv("MONNIFY_API_KEY"))
	path := writeTempFile(t, ".env", "MONNIFY_API_KEY=from-dotenv\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].Provider.APIKey)
}

// TestWithDotEnv_DoesNotOverrideProcessEnv verifies that variables already
// present in the environment win over the file.
func TestWithDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	t.Setenv("MONNIFY_SECRET_KEY", "from-env")
	path := writeTempFile(t, ".env", "MONNIFY_SECRET_KEY=from-dotenv\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].Provider.SecretKey)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_SetsError_WhenValueInvalid verifies that unparsable values are
// collected into b.err.
func TestWithEnv_SetsError_WhenValueInvalid(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedConfig verifies that parsed flags become a layer.
func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "127.0.0.1:7000"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 7000, b.configs[0].Server.Port)
}

// TestWithFlags_SetsError_WhenUnknownFlag verifies that unknown flags are
// reported instead of exiting the process.
func TestWithFlags_SetsError_WhenUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"--no-such-flag"})

	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no layer carries a config path.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_UsesLastPath verifies that the last non-empty path wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeTempFile(t, "first.json", `{"demo":{"url":"https://first.example.com"}}`)
	last := writeTempFile(t, "last.json", `{"demo":{"url":"https://last.example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "https://last.example.com", b.configs[2].Demo.URL)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})

	b.withFile()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies the full chain: env overrides
// defaults, flags override env and the file overrides flags.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	t.Setenv("PORT", "6000")
	t.Setenv("MONNIFY_API_KEY", "env-key")
	t.Setenv("MONNIFY_SECRET_KEY", "env-secret")
	t.Setenv("DEMO_API_URL", "https://env-demo.example.com")
	t.Setenv("CONFIG", "")

	path := writeTempFile(t, "relay.yaml", "provider:\n  request_timeout: 45s\n")

	cfg, err := GetStructuredConfig([]string{
		"--api-key", "flag-key",
		"--demo-url", "https://flag-demo.example.com",
		"-c", path,
	})

	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "flag-key", cfg.Provider.APIKey)
	assert.Equal(t, "env-secret", cfg.Provider.SecretKey)
	assert.Equal(t, "https://flag-demo.example.com", cfg.Demo.URL)
	assert.Equal(t, 45*time.Second, cfg.Provider.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}
