// SPDX-License-Identifier: MIT
//
// File: encoding.go
// Role: YAML encoding. A list is rendered as a plain sequence.

package dll

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Slice(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The previous contents of l are
// replaced only when the whole sequence decodes.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T
	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("dll: decode sequence: %w", err)
	}

	l.Clear()
	var v T
	for _, v = range values {
		l.PushBack(v)
	}

	return nil
}
