package confloader

import (
	"errors"

	"github.com/knadh/koanf/maps"
)

// ErrReadBytesNotSupported is returned when ReadBytes is called on a map provider.
var ErrReadBytesNotSupported = errors.New("confloader: map provider does not support ReadBytes")

// mapProvider loads dotted keys from a flat map.
type mapProvider map[string]any

// ReadBytes is not supported; koanf falls back to Read.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the map unflattened on ".", so "output.format" nests under
// "output".
func (m mapProvider) Read() (map[string]any, error) {
	return maps.Unflatten(m, "."), nil
}
