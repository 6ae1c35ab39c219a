// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the identity making a request. The zero value is the
// anonymous principal.
type Principal struct {
	userID        int64
	authenticated bool
}

// Anonymous returns the principal of a request without a valid session.
func Anonymous() Principal {
	return Principal{}
}

// Authenticated returns the principal bound to userID.
func Authenticated(userID int64) Principal {
	return Principal{userID: userID, authenticated: true}
}

// IsAnonymous reports whether the principal carries no user identity.
func (p Principal) IsAnonymous() bool {
	return !p.authenticated
}

// UserID returns the bound user id and whether the principal is
// authenticated.
func (p Principal) UserID() (int64, bool) {
	return p.userID, p.authenticated
}

// Is reports whether the principal is the authenticated user userID.
func (p Principal) Is(userID int64) bool {
	return p.authenticated && p.userID == userID
}
