package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SQLITE_FILENAME", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./mydb.sqlite", cfg.SQLiteFilename)
	assert.Equal(t, ":3000", cfg.HTTPAddress())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SQLITE_FILENAME", "/tmp/catalog.sqlite")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/catalog.sqlite", cfg.SQLiteFilename)
}
