// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs collects the sentinel error kinds named in the error
// handling design: callers match on these with errors.Is, while the wrapped
// message carries the offending value. The teacher's base/errors helper
// package was not present in the retrieval pack, so these are plain wrapped
// stdlib errors rather than a typed error hierarchy.
package errs

import "errors"

var (
	// ErrInvalidPath is returned by path.Parse on a malformed path string.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidColor is returned when a colour literal cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidAttributeValue is returned when an attribute value string
	// does not match its grammar (e.g. percentage without a number).
	ErrInvalidAttributeValue = errors.New("invalid attribute value")

	// ErrAttributeCycle is returned when topological sort detects a
	// dependency cycle among relative attribute values.
	ErrAttributeCycle = errors.New("attribute dependency cycle")

	// ErrMissingAncestor is returned when a relative value references an
	// ancestor value name with no binding in AncestorValues.
	ErrMissingAncestor = errors.New("missing ancestor value")

	// ErrTypeMismatch is returned when a relative value references an
	// ancestor value of a different concrete type.
	ErrTypeMismatch = errors.New("ancestor value type mismatch")

	// ErrDuplicateChildName is returned when adding a child whose name is
	// already taken among its siblings.
	ErrDuplicateChildName = errors.New("duplicate child name")

	// ErrNotFound is returned when a named template is not registered.
	ErrNotFound = errors.New("not found")
)
