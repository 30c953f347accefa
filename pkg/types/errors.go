// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrUnknownPolicy is returned for a collision policy other than overwrite
// or error.
var ErrUnknownPolicy = errors.New("unknown collision policy")

// ReadError reports a notebook that could not be opened or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading notebook %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// CollisionError reports two files that classify to the same topic and role.
type CollisionError struct {
	Topic    string
	Role     Role
	Existing string
	Incoming string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("topic %q already has a %s notebook %s; refusing %s",
		e.Topic, e.Role, e.Existing, e.Incoming)
}
