// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the public API before any
// request data reaches a service or the database.
//
// Two implementations exist:
//   - CredentialsValidator covers registration and login payloads
//     (email shape, password length);
//   - SettingsValidator covers partial settings updates
//     (tone and reply-length ranges, member roles and emails).
//
// Both are injected into services behind the generic [Validator] interface,
// which keeps validation decoupled from transport and storage and lets tests
// swap in failing validators.
package validators

import "context"

// Validator validates arbitrary input values. Implementations may perform
// structural validation, semantic checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
