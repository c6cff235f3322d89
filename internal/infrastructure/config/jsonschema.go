package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema describing config.toml.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tabshell/config.schema.json"
	schema.Title = "tabshell configuration"
	schema.Description = "Configuration schema for tabshell, a multi-tab browser shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml and
// returns its path.
func GenerateSchemaFile(configDir string) (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
