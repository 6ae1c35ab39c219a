// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-blog server handlers and middleware.
//
// Reason* constants are the machine-readable values of the "error" field in
// error responses. Msg* constants are human-readable strings written into
// response bodies or log entries.
package app

// Error reasons.
const (
	ReasonValidationError    = "validation_error"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonUnauthenticated    = "unauthenticated"
	ReasonForbidden          = "forbidden"
	ReasonNotFound           = "not_found"
	ReasonConflict           = "conflict"
	ReasonInternalError      = "internal_error"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserCreated confirms a successful signup.
	MsgUserCreated = "user created successfully"

	// MsgLoginSuccessful confirms a successful login.
	MsgLoginSuccessful = "login successful"

	// MsgLoggedOut confirms that the session cookie was cleared.
	MsgLoggedOut = "logged out"

	// MsgPostDeleted confirms a successful post deletion.
	MsgPostDeleted = "blog deleted successfully"
)
