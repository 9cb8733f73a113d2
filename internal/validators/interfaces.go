// SPDX-License-Identifier: Apache-2.0

// Package validators checks untrusted sync frames and event bodies before
// the dispatcher lets them anywhere near client state.
//
// Every event type arriving over the relay's sync stream has a validator
// here. The dispatcher runs the matching validator first and drops or
// rejects anything that fails, so handlers can assume well-formed input.
// Validators never touch storage or the network.
package validators

import "context"

// Validator checks one kind of input value. The optional field names
// restrict the check to those fields, which lets callers validate partial
// updates.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
