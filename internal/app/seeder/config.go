package seeder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	Logins       []string `yaml:"logins"         env:"SEEDER_LOGINS"          env-default:"alice,bob" env-separator:","`
	ItemsPerUser int      `yaml:"items_per_user" env:"SEEDER_ITEMS_PER_USER"  env-default:"5"`
	UnownedItems int      `yaml:"unowned_items"  env:"SEEDER_UNOWNED_ITEMS"   env-default:"3"`
	BatchSize    int      `yaml:"batch_size"     env:"SEEDER_BATCH_SIZE"      env-default:"100"`
	DryRun       bool     `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads the seeder settings. With a path, the YAML file is read
// and SEEDER_* variables still override it; without one only the environment
// and the defaults apply.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	var err error
	switch {
	case path == "":
		err = cleanenv.ReadEnv(&cfg)
	default:
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("seeder config: %w", statErr)
		}
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}

	cfg.Logins = normalizeLogins(cfg.Logins)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.ItemsPerUser < 0 {
		errs = append(errs, fmt.Errorf("items_per_user must not be negative, got %d", c.ItemsPerUser))
	}
	if c.UnownedItems < 0 {
		errs = append(errs, fmt.Errorf("unowned_items must not be negative, got %d", c.UnownedItems))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch_size must be positive, got %d", c.BatchSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("seeder config: %w", err)
	}
	return nil
}

// normalizeLogins trims and deduplicates logins, keeping their order.
func normalizeLogins(logins []string) []string {
	seen := make(map[string]struct{}, len(logins))
	out := logins[:0]
	for _, l := range logins {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
