package src

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// CurrentSchemaVersion is written into new config files.
const CurrentSchemaVersion = "1.0"

// SupportedSchemas is the range of config schema versions this build can read.
const SupportedSchemas = ">= 1.0, < 2.0"

// CheckSchemaVersion reports whether a config file's schema_version can be loaded.
func CheckSchemaVersion(schema string) error {
	v, err := version.NewVersion(schema)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", schema, err)
	}
	constraints, err := version.NewConstraint(SupportedSchemas)
	if err != nil {
		return err
	}
	if !constraints.Check(v) {
		return fmt.Errorf("config schema_version %s is not supported (want %s)", v, SupportedSchemas)
	}
	return nil
}

// IsNewerSchema reports whether a config was written by a newer build.
func IsNewerSchema(schema string) (bool, error) {
	current, err := version.NewVersion(CurrentSchemaVersion)
	if err != nil {
		return false, err
	}
	other, err := version.NewVersion(schema)
	if err != nil {
		return false, err
	}
	return other.GreaterThan(current), nil
}
