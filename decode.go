/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elements

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-elements/ai"
	"github.com/pkg/errors"
)

// Terminator is the default field terminator: ASCII 29, the Group
// Separator, which barcode readers conventionally emit in place of FNC1.
const Terminator = byte(29)

// DuplicatePolicy selects what a Decoder does when a payload carries the
// same AI more than once.
type DuplicatePolicy int

const (
	// KeepFirst keeps the first occurrence and drops later ones. This
	// matches how most element-string consumers have historically behaved,
	// so it's the default.
	KeepFirst = DuplicatePolicy(iota)
	// Overwrite keeps the last occurrence.
	Overwrite
	// Reject fails the decode with ErrDuplicateAI.
	Reject
)

// Decoder splits element strings into their per-AI fields.
//
// A Decoder is immutable after NewDecoder returns it, so a single Decoder
// is safe for concurrent Decode calls; each call builds and returns its own
// Record.
type Decoder struct {
	table      ai.Table
	terminator byte
	duplicates DuplicatePolicy
	encodable  bool
}

// Option configures a Decoder during NewDecoder.
type Option func(*Decoder)

// WithTable sets the AI table the Decoder matches against, replacing
// ai.Default().
func WithTable(t ai.Table) Option {
	return func(d *Decoder) {
		d.table = t
	}
}

// WithTerminator sets the byte that ends variable-length fields, replacing
// the Group Separator. Some readers substitute a printable character for
// FNC1 when their interface can't carry control characters.
func WithTerminator(b byte) Option {
	return func(d *Decoder) {
		d.terminator = b
	}
}

// WithDuplicatePolicy sets what Decode does when the same AI appears more
// than once in a payload, replacing KeepFirst.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(d *Decoder) {
		d.duplicates = p
	}
}

// WithEncodableCheck makes Decode fail with ErrNotEncodable if any field
// value uses characters outside the GS1 AI Encodable Character Set 82.
func WithEncodableCheck() Option {
	return func(d *Decoder) {
		d.encodable = true
	}
}

// NewDecoder returns a Decoder using the standard AI table, the GS
// terminator, and the KeepFirst duplicate policy, as modified by the given
// options.
func NewDecoder(opts ...Option) Decoder {
	d := Decoder{table: ai.Default(), terminator: Terminator}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Decode is a convenience function equivalent to NewDecoder().Decode(payload).
func Decode(payload string) (Record, error) {
	return NewDecoder().Decode(payload)
}

// Decode splits payload into a Record mapping each AI code to its raw
// value, preserving the order fields appear in the payload.
//
// The scan is a single left-to-right pass: characters accumulate into a
// candidate code until the candidate matches a registered AI, then that
// AI's value is read -- at most MaxLength characters, ending early at the
// terminator (which is consumed but not stored) or at end of input. A value
// below its AI's MinLength fails with ErrFieldTooShort; characters that
// never grow into a registered code fail with ErrUnknownAI. Failures
// discard the partial record.
//
// An empty payload decodes to an empty Record, not an error.
func (d Decoder) Decode(payload string) (Record, error) {
	r := newRecord()
	code := ""
	i := 0
	for i < len(payload) {
		code += string(payload[i])
		i++
		def, ok := d.table.Lookup(code)
		if !ok {
			continue
		}
		code = ""

		start := i
		for i-start < def.MaxLength && i < len(payload) && payload[i] != d.terminator {
			i++
		}
		value := payload[start:i]
		if i-start < def.MaxLength && i < len(payload) {
			// stopped at the terminator; consume it, but don't store it
			i++
		}

		if len(value) < def.MinLength {
			return Record{}, errors.Wrapf(ErrFieldTooShort,
				"AI %s requires at least %d characters, but %q has %d",
				def.Code, def.MinLength, value, len(value))
		}
		if d.encodable && !IsEncodable(value) {
			return Record{}, errors.Wrapf(ErrNotEncodable,
				"AI %s value %q", def.Code, value)
		}
		if err := d.insert(&r, def.Code, value); err != nil {
			return Record{}, err
		}
	}

	if code != "" {
		return Record{}, errors.Wrapf(ErrUnknownAI, "no AI matches %q", code)
	}
	return r, nil
}

func (d Decoder) insert(r *Record, code, value string) error {
	if _, ok := r.values[code]; ok {
		switch d.duplicates {
		case KeepFirst:
			return nil
		case Reject:
			return errors.Wrapf(ErrDuplicateAI,
				"AI %s appears more than once", code)
		}
		r.values[code] = value
		return nil
	}
	r.codes = append(r.codes, code)
	r.values[code] = value
	return nil
}
