package forum

import (
	"fmt"

	"github.com/placementcell/backend/internal/models"
)

// canEdit allows only the author of an entity to change its content.
func canEdit(author, actor models.Actor) error {
	if actor.ID != author.ID {
		return fmt.Errorf("only the author may edit: %w", ErrForbidden)
	}
	return nil
}

// canDelete allows the author or any staff identity to remove an entity.
// Callers must resolve the entity first so that a missing entity surfaces
// as NotFound before any Forbidden.
func canDelete(author, actor models.Actor) error {
	if actor.ID == author.ID || actor.IsStaff() {
		return nil
	}
	return fmt.Errorf("only the author or staff may delete: %w", ErrForbidden)
}
