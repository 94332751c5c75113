package export

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Asset describes one generated file or file set in the manifest.
type Asset struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"` // "ico" or "png"
	Theme  string `yaml:"theme"`  // "dark" or "light"
	Sizes  []int  `yaml:"sizes"`
}

// Manifest records everything a run generated, for consumption by build
// scripts that embed or package the assets.
type Manifest struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Assets      []Asset   `yaml:"assets"`
}

// WriteManifest serializes the manifest to path as YAML, overwriting any
// existing file.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("assets", len(m.Assets)).
		Msg("Created manifest")
	return nil
}
