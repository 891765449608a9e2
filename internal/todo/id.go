package todo

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// ID uniquely identifies a Todo.
// The zero value is not a valid identifier; use NewID or ParseID.
type ID struct {
	u uuid.UUID
}

// NewID returns a fresh random identifier
func NewID() ID {
	return ID{u: uuid.New()}
}

// ParseID parses the textual form of an ID.
// The canonical, simple (32 hex digits), {braced} and urn:uuid: forms are
// accepted; anything else yields an error matching ErrInvalidID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{u: u}, nil
}

// MustParseID is like ParseID but panics on malformed input.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical textual form
func (id ID) String() string {
	return id.u.String()
}

// Compare orders IDs by their bytes, which matches the order of their
// canonical text. It returns -1, 0 or +1.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id.u[:], other.u[:])
}

// IsZero reports whether id is the zero value
func (id ID) IsZero() bool {
	return id.u == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
