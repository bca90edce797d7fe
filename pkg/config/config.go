package config

import (
	"github.com/arthur-debert/gildedrose/pkg/errors"
	"github.com/arthur-debert/gildedrose/pkg/report"
)

// Config is the complete application configuration
type Config struct {
	Output  Output  `koanf:"output" yaml:"output" json:"output"`
	Report  Report  `koanf:"report" yaml:"report" json:"report"`
	Logging Logging `koanf:"logging" yaml:"logging" json:"logging"`
}

// Output holds output format settings
type Output struct {
	Format  string `koanf:"format" yaml:"format" json:"format"`
	NoColor bool   `koanf:"no_color" yaml:"noColor" json:"noColor"`
}

// Report holds report content settings
type Report struct {
	ShowCategory bool `koanf:"show_category" yaml:"showCategory" json:"showCategory"`
}

// Logging holds logging settings
type Logging struct {
	Verbosity int `koanf:"verbosity" yaml:"verbosity" json:"verbosity"`
}

// Validate checks values that cannot be expressed through types alone
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid output.format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity).
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// ReportOptions converts the output settings for a report renderer
func (c *Config) ReportOptions() (report.Options, error) {
	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Format:       format,
		NoColor:      c.Output.NoColor,
		ShowCategory: c.Report.ShowCategory,
	}, nil
}
