// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrServe is returned by RunServer when the listener fails before any
	// shutdown was requested (for example, the address is already in use).
	ErrServe = errors.New("server stopped unexpectedly")
)
