package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db",
		Port:     "5432",
		User:     "postgres",
		Password: "p@ss word",
		Database: "persons",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=postgres password='p@ss word' dbname=persons sslmode=disable", cfg.DSN())
}

func TestReplicaDSN_ReusesDatabaseName(t *testing.T) {
	t.Setenv("PG_REPLICAS_0_HOST", "replica-0")
	t.Setenv("PG_REPLICAS_0_PORT", "5433")
	t.Setenv("PG_REPLICAS_0_USERNAME", "reader")
	t.Setenv("PG_REPLICAS_0_PASSWORD", "secret")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)

	cfg := &PostgresConfig{Database: "persons", SSLMode: "require"}
	assert.Equal(t, "host=replica-0 port=5433 user=reader password=secret dbname=persons sslmode=require", cfg.ReplicaDSN(replicas[0]))
}

func TestBuildReplicasFromEnv_StopsAtGap(t *testing.T) {
	t.Setenv("PG_REPLICAS_0_HOST", "replica-0")
	t.Setenv("PG_REPLICAS_0_PORT", "5433")
	t.Setenv("PG_REPLICAS_2_HOST", "replica-2")
	t.Setenv("PG_REPLICAS_2_PORT", "5435")

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.PG)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultMinAge, cfg.Generator.MinAge)
	assert.Equal(t, defaultMaxAge, cfg.Generator.MaxAge)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_RaisesMaxAgeBelowMinAge(t *testing.T) {
	cfg := &Config{Generator: &GeneratorConfig{MinAge: 120, MaxAge: 30}}
	applyDefaults(cfg)

	assert.Equal(t, 120, cfg.Generator.MinAge)
	assert.Equal(t, 120, cfg.Generator.MaxAge)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
pg:
  host: localhost
  port: "5432"
  database: persons
  connMaxLifetime: 30m
http:
  port: 8000
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bench.yaml"), yamlBody, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_DATABASE", "bench")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := LoadWithEnv[Config]("bench", rel)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.PG.Host)
	assert.Equal(t, "5432", cfg.PG.Port)
	assert.Equal(t, "bench", cfg.PG.Database)
	assert.Equal(t, 30*time.Minute, cfg.PG.ConnMaxLifetime)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
