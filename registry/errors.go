package registry

import (
	"fmt"

	"github.com/rulebook-dev/rulebook/rules"
)

// DuplicateIDError reports a registration collision within a scope.
type DuplicateIDError struct {
	Scope rules.Scope
	ID    string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate rule id %q in scope %q", e.ID, e.Scope)
}
