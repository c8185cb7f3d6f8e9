package assets

import (
	"fmt"
	"strings"
)

// ValidateName rejects template names that could escape the embedded
// template root: empty names, absolute paths, and parent-directory
// traversal.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains path traversal", ErrInvalidAssetName, name)
	}
	return nil
}
