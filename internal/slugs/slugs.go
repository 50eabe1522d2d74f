// Package slugs builds the stable kind:slug identifiers assigned to tagged
// entities at creation time.
package slugs

import (
	"strings"

	"github.com/google/uuid"
	goslug "github.com/gosimple/slug"

	"github.com/vellumtools/vellum/internal/model"
)

// EntityID derives an identifier for a new entity from its kind and display
// name, e.g. "term:acme-corp". IDs are assigned once and never reused; when
// the name slugifies to nothing (symbols-only input) a uuid takes its place.
func EntityID(kind model.EntityKind, name string) string {
	s := goslug.Make(name)
	if s == "" {
		s = uuid.NewString()
	}
	return string(kind) + ":" + s
}

// Disambiguate appends a short uuid suffix to id. Used when a freshly
// derived id collides with an existing entity.
func Disambiguate(id string) string {
	return id + "-" + uuid.NewString()[:8]
}

// KindOf extracts the kind component of an entity id, or "" if the id is
// not in kind:slug form.
func KindOf(id string) model.EntityKind {
	prefix, _, ok := strings.Cut(id, ":")
	if !ok {
		return ""
	}
	kind := model.EntityKind(prefix)
	if !kind.Valid() {
		return ""
	}
	return kind
}
