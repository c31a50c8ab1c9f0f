/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elements

import "github.com/pkg/errors"

// Decode and Record failures wrap these values with payload-specific
// context; recover them with errors.Cause to branch on the failure kind.
var (
	// ErrUnknownAI means no registered AI code matched any prefix of the
	// remaining input, so the payload cannot be split further.
	ErrUnknownAI = errors.New("unknown application identifier")

	// ErrFieldTooShort means a field's value ended (at the terminator or at
	// end of input) before reaching its AI's minimum length.
	ErrFieldTooShort = errors.New("field value too short")

	// ErrDuplicateAI is returned under the Reject duplicate policy when a
	// payload carries the same AI more than once.
	ErrDuplicateAI = errors.New("duplicate application identifier")

	// ErrNotEncodable means a field's value uses characters outside the GS1
	// AI Encodable Character Set 82; it's only returned when the decoder
	// was built with WithEncodableCheck.
	ErrNotEncodable = errors.New("value not in the GS1 AI character set")

	// ErrAINotFound means an accessor asked a Record for an AI it doesn't
	// contain.
	ErrAINotFound = errors.New("application identifier not in record")

	// ErrNonNumericValue means a numeric accessor was used on an AI whose
	// value (or whose code) has no numeric interpretation.
	ErrNonNumericValue = errors.New("non-numeric value")

	// ErrInvalidDate means a date accessor found a value that doesn't
	// conform to the YYMMDD layout.
	ErrInvalidDate = errors.New("invalid date value")
)
