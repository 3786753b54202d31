// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// inbox-pilot server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
// Capitalized messages reproduce the wording the web client already matches
// on; they must not be reworded without a coordinated frontend change.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmailAlreadyRegistered is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing user record. The same message
	// covers unknown emails and wrong passwords.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserIsInactive is returned when credentials are correct but the
	// account has been deactivated.
	MsgUserIsInactive = "User is inactive"

	// MsgNotAuthenticated is returned when a protected endpoint is called
	// without a Bearer authorization header.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is returned when a JWT bearer token cannot be verified
	// (wrong signature, malformed payload, or missing required claims).
	MsgInvalidToken = "Invalid token"

	// MsgTokenExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenExpired = "Token expired"

	// MsgUserNotFound is returned when the token verifies but the account it
	// refers to no longer exists.
	MsgUserNotFound = "User not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDatabaseUnavailable is returned when the persistence backend cannot
	// be reached or rejects the operation for infrastructural reasons.
	MsgDatabaseUnavailable = "database unavailable"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing an access token.
	MsgLoginFailed = "login failed"
)
