package pipeline

import (
	"fmt"
	"runtime"

	"mockapi/src/domain"
	"mockapi/src/encoders"
)

const DefaultOutputDir = "public/api/v1"

// Config is built once at start-up and never mutated by the pipeline.
type Config struct {
	OutputDir  string
	Counts     map[domain.EntityKey]int
	Seed       int64
	Formats    []encoders.Format
	CSVFlatten encoders.FlattenPolicy
	Workers    int
}

func DefaultCounts() map[domain.EntityKey]int {
	return map[domain.EntityKey]int{
		domain.Users:             100,
		domain.Posts:             500,
		domain.Comments:          2000,
		domain.Todos:             300,
		domain.Photos:            500,
		domain.Products:          200,
		domain.Orders:            150,
		domain.Carts:             50,
		domain.PostCategories:    10,
		domain.ProductCategories: 15,
		domain.Notes:             100,
		domain.Payments:          150,
	}
}

func DefaultConfig() Config {
	return Config{
		OutputDir:  DefaultOutputDir,
		Counts:     DefaultCounts(),
		Formats:    encoders.AllFormats(),
		CSVFlatten: encoders.FlattenScalar,
		Workers:    runtime.NumCPU(),
	}
}

// Count returns the configured record count for key, 0 if absent.
func (c Config) Count(key domain.EntityKey) int {
	return c.Counts[key]
}

// clone detaches the config from the caller's maps and slices.
func (c Config) clone() Config {
	counts := make(map[domain.EntityKey]int, len(c.Counts))
	for k, v := range c.Counts {
		counts[k] = v
	}
	c.Counts = counts

	formats := make([]encoders.Format, len(c.Formats))
	copy(formats, c.Formats)
	c.Formats = formats
	return c
}

// Validate checks that every planned entity has a positive count and that
// the output surface is well formed.
func (c Config) Validate(keys []domain.EntityKey) error {
	if c.OutputDir == "" {
		return fmt.Errorf("Config.Validate - output directory is required")
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("Config.Validate - at least one format is required")
	}

	seen := make(map[encoders.Format]bool, len(c.Formats))
	for _, f := range c.Formats {
		if _, err := encoders.ParseFormat(string(f)); err != nil {
			return fmt.Errorf("Config.Validate - %w", err)
		}
		if seen[f] {
			return fmt.Errorf("Config.Validate - format %s listed twice", f)
		}
		seen[f] = true
	}

	if _, err := encoders.ParseFlattenPolicy(string(c.CSVFlatten)); err != nil {
		return fmt.Errorf("Config.Validate - %w", err)
	}

	for key := range c.Counts {
		if _, err := domain.ParseEntityKey(string(key)); err != nil {
			return fmt.Errorf("Config.Validate - %w", err)
		}
	}
	for _, key := range keys {
		if c.Counts[key] <= 0 {
			return fmt.Errorf("Config.Validate - %s count %d: %w", key, c.Counts[key], domain.ErrInvalidCount)
		}
	}
	return nil
}
