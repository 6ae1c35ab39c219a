// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-blog/internal/app"
)

var (
	// errInvalidJSON is the validation reason for request bodies that cannot
	// be decoded.
	errInvalidJSON = errors.New(app.MsgInvalidDataProvided)

	// errInvalidPostID is returned for a {id} path segment that is not a
	// positive integer.
	errInvalidPostID = errors.New("invalid post id")
)
