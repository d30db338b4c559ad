package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}

	switch c.Data.LexiconSource {
	case LexiconSourceJSON:
	case LexiconSourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when data.lexicon_source is %q", LexiconSourcePostgres)
		}
	default:
		return fmt.Errorf("data.lexicon_source must be %q or %q (got %q)",
			LexiconSourceJSON, LexiconSourcePostgres, c.Data.LexiconSource)
	}

	if c.Cache.GlossSize < 0 {
		return fmt.Errorf("cache.gloss_size must be >= 0 (got %d)", c.Cache.GlossSize)
	}
	if c.Cache.ExampleSize < 0 {
		return fmt.Errorf("cache.example_size must be >= 0 (got %d)", c.Cache.ExampleSize)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be \"json\" or \"text\" (got %q)", c.Log.Format)
	}

	return nil
}
