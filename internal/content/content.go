// Package content loads the data tables that drive a session.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

//go:embed content.yaml
var defaultYAML []byte

var (
	ErrDuplicateID   = errors.New("duplicate identifier")
	ErrUnknownFood   = errors.New("offer references unknown food")
	ErrUnknownNPC    = errors.New("offerer is not a known npc")
	ErrUnknownObject = errors.New("ownership record references unknown hunt item")
)

// Default returns the embedded content tables
func Default() (*models.Content, error) {
	return Parse(defaultYAML)
}

// LoadFile reads and validates content from a YAML file
func LoadFile(path string) (*models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML content document
func Parse(data []byte) (*models.Content, error) {
	var c models.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	if err := checkReferences(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// checkReferences enforces the cross-table rules struct tags cannot express
func checkReferences(c *models.Content) error {
	seen := make(map[string]bool, len(c.HuntItems))
	for _, it := range c.HuntItems {
		if seen[it.ID] {
			return fmt.Errorf("hunt item %q: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
	}
	for _, rec := range c.Ownership {
		if !seen[rec.Name] {
			return fmt.Errorf("ownership %q: %w", rec.Name, ErrUnknownObject)
		}
	}

	foods := make(map[string]bool, len(c.Foods))
	for _, f := range c.Foods {
		if foods[f] {
			return fmt.Errorf("food %q: %w", f, ErrDuplicateID)
		}
		foods[f] = true
	}
	for _, f := range c.Offers {
		if !foods[f] {
			return fmt.Errorf("offer %q: %w", f, ErrUnknownFood)
		}
	}

	npcs := make(map[string]bool, len(c.NPCs))
	for _, n := range c.NPCs {
		if npcs[n.ID] {
			return fmt.Errorf("npc %q: %w", n.ID, ErrDuplicateID)
		}
		npcs[n.ID] = true
	}
	if !npcs[c.Offerer] {
		return fmt.Errorf("offerer %q: %w", c.Offerer, ErrUnknownNPC)
	}
	return nil
}
