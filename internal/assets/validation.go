package assets

import (
	"fmt"
	"strings"
)

// nameForbidden holds the characters an asset name may never contain:
// separators would address other directories, and dots would swap the
// extension the loaders append.
const nameForbidden = `/\.`

// ValidateAssetName rejects names that could escape the asset directories
// or change the loaded file type. Names are bare identifiers like "default"
// or "page"; extensions and paths belong to the loaders.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, nameForbidden) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
