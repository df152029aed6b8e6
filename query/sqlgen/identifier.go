package sqlgen

import (
	"fmt"
	"strings"
)

// ValidateIdentifier rejects blank names and names carrying statement
// terminators. Identifiers are rendered verbatim, not quoted, so this is the
// only gate between caller input and the SQL text.
func ValidateIdentifier(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: blank name", ErrInvalidIdentifier)
	}
	if strings.ContainsRune(trimmed, ';') || strings.Contains(trimmed, "--") {
		return fmt.Errorf("%w: %q contains a statement terminator", ErrInvalidIdentifier, name)
	}
	return nil
}

// ValidateRawFragment applies the terminator check to caller-supplied SQL
// text. Raw fragments otherwise bypass all safety guarantees.
func ValidateRawFragment(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: blank raw fragment", ErrInvalidIdentifier)
	}
	if strings.ContainsRune(text, ';') || strings.Contains(text, "--") {
		return fmt.Errorf("%w: raw fragment %q contains a statement terminator", ErrInvalidIdentifier, text)
	}
	return nil
}
