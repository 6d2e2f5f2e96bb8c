package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MemoryBackendNeedsNoDatabase(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", StorageMemory)
	for _, envVar := range PostgresEnvVars {
		t.Setenv(envVar, "")
	}

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresMissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "postgres")
	for _, envVar := range PostgresEnvVars {
		t.Setenv(envVar, "")
	}
	t.Setenv("DB_HOST", "localhost")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestValidateEnvWithWarnings_InsecureValues(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", StoragePostgres)
	for _, envVar := range PostgresEnvVars {
		t.Setenv(envVar, "test_value")
	}
	t.Setenv("DB_PASSWORD", ExampleDBPassword)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DICE_SEED", "42")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "DICE_SEED")
}

func TestValidateEnvWithWarnings_DevSeedIsFine(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", StorageMemory)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("DICE_SEED", "42")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
