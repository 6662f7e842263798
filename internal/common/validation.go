package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePath validates that a path is absolute
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}
	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateSpec validates a dependency spec string. Specs are passed opaquely
// to uberenv, so only reject values that would break argument construction.
func ValidateSpec(spec string) error {
	if strings.TrimSpace(spec) == "" {
		return fmt.Errorf("spec cannot be empty")
	}
	if strings.ContainsAny(spec, " \t\n") {
		return fmt.Errorf("spec cannot contain whitespace: %s", spec)
	}
	return nil
}

// ValidateGroupName validates a Unix group name
func ValidateGroupName(group string) error {
	if group == "" {
		return fmt.Errorf("group name cannot be empty")
	}

	if len(group) > 32 {
		return fmt.Errorf("group name too long (max 32 characters): %s", group)
	}

	firstChar := group[0]
	if !((firstChar >= 'a' && firstChar <= 'z') || (firstChar >= 'A' && firstChar <= 'Z') || firstChar == '_') {
		return fmt.Errorf("group name must start with a letter or underscore: %s", group)
	}

	for _, c := range group {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("group name contains invalid character: %s", group)
		}
	}

	return nil
}
