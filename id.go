// Handles Notion object identifiers (UUIDv4 strings).

package notion

import (
	"fmt"

	"github.com/google/uuid"
)

// ObjectID is a Notion object identifier. The API emits dashed
// lowercase UUIDv4 strings and accepts dashless ones in URLs.
type ObjectID string

// ParseObjectID parses s as a Notion object ID. Both dashed and
// dashless forms are accepted; the result is normalized to the dashed
// lowercase form the API emits.
func ParseObjectID(s string) (ObjectID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid object ID %q: %w", s, err)
	}
	return ObjectID(u.String()), nil
}

// MustObjectID is like ParseObjectID but panics on error. Intended for
// tests and literals known to be valid.
func MustObjectID(s string) ObjectID {
	id, err := ParseObjectID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// NewObjectID returns a random object ID. The API assigns IDs itself;
// this exists for constructing fixtures and synthetic data.
func NewObjectID() ObjectID {
	return ObjectID(uuid.NewString())
}

// String returns the ID as a plain string.
func (id ObjectID) String() string {
	return string(id)
}

// Validate checks that the ID parses as a UUID.
func (id ObjectID) Validate() error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return InvalidField("id", err.Error())
	}
	return nil
}

// Normalized returns the dashed lowercase form of the ID, or the ID
// unchanged when it does not parse.
func (id ObjectID) Normalized() ObjectID {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return id
	}
	return ObjectID(u.String())
}
