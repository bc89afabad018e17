package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Typeahead.Namespace = "written"
	cfg.History.Path = "/tmp/written.sqlite"
	require.NoError(t, WriteConfig(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "[typeahead]"))
	assert.True(t, strings.Contains(string(content), "[appearance.palette]") || strings.Contains(string(content), "[appearance]"))

	mgr, err := loadFile(t, path)
	require.NoError(t, err)
	assert.Equal(t, cfg, mgr.Get())
}

func TestWriteConfig_Nil(t *testing.T) {
	assert.Error(t, WriteConfig(nil, filepath.Join(t.TempDir(), "c.toml")))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Typeahead Configuration", doc["title"])
	assert.Contains(t, string(data), "max_visible_options")
	assert.Contains(t, string(data), "hint_script")

	schemaFile, err := WriteSchemaFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, schemaName, filepath.Base(schemaFile))
}
