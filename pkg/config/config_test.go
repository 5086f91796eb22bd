package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.Neo4jURI)
	assert.NotEmpty(t, cfg.Neo4jUser)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NEO4J_URI", "bolt://neo4j:7687")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "bolt://neo4j:7687", cfg.Neo4jURI)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Neo4jURI: "bolt://localhost:7687", Neo4jUser: "neo4j", Neo4jPassword: "password"}
	assert.NoError(t, cfg.Validate())

	cfg.Neo4jURI = ""
	assert.Error(t, cfg.Validate())
}
