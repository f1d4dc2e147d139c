package schema

import (
	"fmt"
	"regexp"

	"github.com/ucasfl/milvus/internal/domain"
)

// First character must be a letter or underscore, the rest alphanumeric or underscore.
var nameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const maxNameLength = 255

// NameRules is the default collection name validator.
type NameRules struct{}

// ValidateCollectionName checks a proposed collection name against naming rules.
// Failures wrap domain.ErrInvalidCollectionName.
func (NameRules) ValidateCollectionName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidCollectionName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidCollectionName, maxNameLength)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf(
			"%w: name %q must start with a letter or underscore and contain only letters, numbers and underscores",
			domain.ErrInvalidCollectionName, name,
		)
	}
	return nil
}
