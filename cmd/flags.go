package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/tailblocks/internal/renderer"
)

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// ValidateFormat returns a validator accepting one of formats.
func ValidateFormat(formats ...string) func(string) error {
	return func(format string) error {
		for _, f := range formats {
			if strings.EqualFold(format, f) {
				return nil
			}
		}
		return fmt.Errorf("invalid format %q, must be one of: %s", format, strings.Join(formats, ", "))
	}
}

// ValidatePort checks a --port value.
func ValidatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", portStr)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}

	return nil
}

// readProps parses a --props value. A leading @ names a JSON or YAML file.
func readProps(value string) (*yaml.Node, error) {
	if strings.HasPrefix(value, "@") {
		filename := strings.TrimPrefix(value, "@")
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read props file %s: %w", filename, err)
		}
		value = string(data)
	}

	props, err := renderer.ParseProps(value)
	if err != nil {
		return nil, fmt.Errorf("invalid props: %w", err)
	}
	return props, nil
}
