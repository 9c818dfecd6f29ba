// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/validation"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &cli.UsageError{Err: fmt.Errorf("--%s is required", flagName)}
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag, trimmed. An unset
// flag gives its default.
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return strings.TrimSpace(value), nil
}

// ParseStringChanged extracts a string flag for a partial update. It
// returns nil when the flag was not given, so "" can mean "clear".
func (p *FlagParser) ParseStringChanged(flagName string) (*string, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return &value, nil
}

// ParseAge extracts an age flag. Ages are read as strings so a value like
// "twenty" is reported as a validation error, not a usage error.
func (p *FlagParser) ParseAge(flagName string) (int, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return validation.ParseAge(raw)
}

// ParseAgeChanged extracts an age flag for a partial update
func (p *FlagParser) ParseAgeChanged(flagName string) (*int, error) {
	raw, err := p.ParseStringChanged(flagName)
	if err != nil || raw == nil {
		return nil, err
	}
	age, err := validation.ParseAge(*raw)
	if err != nil {
		return nil, err
	}
	return &age, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// ParseListOptions extracts the --sort, --desc and --search list flags
func (p *FlagParser) ParseListOptions() (models.ListOptions, error) {
	var opts models.ListOptions
	var err error

	if opts.SortBy, err = p.cmd.Flags().GetString("sort"); err != nil {
		return opts, fmt.Errorf("failed to parse sort flag: %w", err)
	}
	if opts.Desc, err = p.cmd.Flags().GetBool("desc"); err != nil {
		return opts, fmt.Errorf("failed to parse desc flag: %w", err)
	}
	if opts.Search, err = p.cmd.Flags().GetString("search"); err != nil {
		return opts, fmt.Errorf("failed to parse search flag: %w", err)
	}
	opts.SortBy = strings.ToLower(strings.TrimSpace(opts.SortBy))
	return opts, nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
