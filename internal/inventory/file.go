package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource reads an inventory from a JSON or YAML file. The format is
// picked by extension; anything other than .yaml/.yml is decoded as JSON.
type FileSource struct {
	Path string
}

var _ Provider = FileSource{}

// FetchInventory implements Provider.
func (f FileSource) FetchInventory(ctx context.Context) (Inventory, error) {
	if err := ctx.Err(); err != nil {
		return Inventory{}, err
	}
	path := strings.TrimSpace(f.Path)
	if path == "" {
		return Inventory{}, errors.New("data file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Inventory{}, fmt.Errorf("read data file: %w", err)
	}

	var inv Inventory
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &inv)
	default:
		err = json.Unmarshal(data, &inv)
	}
	if err != nil {
		return Inventory{}, fmt.Errorf("parse data file %s: %w", filepath.Base(path), err)
	}
	return inv, nil
}

// Describe implements Provider.
func (f FileSource) Describe() string {
	return f.Path
}
