/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ai maintains registries of GS1 Application Identifiers.
//
// An Application Identifier (AI) is a 2-4 digit code defined by the GS1
// General Specifications; it prefixes a data field within an element string
// and determines both the meaning of the field and the lengths its value is
// permitted to have. This package only concerns itself with the structural
// half of that: which codes exist and what value lengths they allow. The
// semantic interpretation of the values belongs to the elements package.
package ai

import (
	"github.com/pkg/errors"
	"sync"
)

// Definition describes a single Application Identifier: its code and the
// inclusive range of value lengths the GS1 General Specifications permit
// for it.
type Definition struct {
	Code      string
	MinLength int
	MaxLength int
}

// Fixed returns true if every legal value for this AI has exactly one length.
func (d Definition) Fixed() bool {
	return d.MinLength == d.MaxLength
}

// Table is an immutable registry of AI Definitions keyed by code. Once
// constructed, a Table is never modified, so it's safe to share a single
// Table among any number of concurrent decoders.
type Table struct {
	defs map[string]Definition
}

// NewTable builds a Table from the given definitions, or returns an error
// describing the first definition that violates the structural rules:
// codes must be 2-4 decimal digits, registered at most once, with
// 1 <= MinLength <= MaxLength.
//
// NewTable also rejects any set of definitions in which one code is a
// proper prefix of another. Decoders match codes by greedily accumulating
// characters until a registered code appears, which is only unambiguous if
// the registered codes are prefix-free; the GS1 specifications allocate
// codes so that this holds, and checking it here once means decoders never
// have to.
func NewTable(defs ...Definition) (Table, error) {
	t := Table{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if len(d.Code) < 2 || len(d.Code) > 4 {
			return Table{}, errors.Errorf("AI codes have 2-4 digits, "+
				"but %q has %d characters", d.Code, len(d.Code))
		}
		for i := 0; i < len(d.Code); i++ {
			if d.Code[i] < '0' || d.Code[i] > '9' {
				return Table{}, errors.Errorf("AI codes use only the "+
					"digits 0-9, but this is %q", d.Code)
			}
		}
		if d.MinLength < 1 || d.MinLength > d.MaxLength {
			return Table{}, errors.Errorf("AI %s has length range [%d, %d], "+
				"but lengths must satisfy 1 <= min <= max",
				d.Code, d.MinLength, d.MaxLength)
		}
		if _, ok := t.defs[d.Code]; ok {
			return Table{}, errors.Errorf("AI %s is registered twice", d.Code)
		}
		t.defs[d.Code] = d
	}

	for code := range t.defs {
		for n := 2; n < len(code); n++ {
			if _, ok := t.defs[code[:n]]; ok {
				return Table{}, errors.Errorf("AI %s is a proper prefix "+
					"of AI %s, which makes prefix matching ambiguous",
					code[:n], code)
			}
		}
	}
	return t, nil
}

// Lookup returns the Definition registered for exactly this code. There is
// no partial or fuzzy matching: "31" does not find "3102".
func (t Table) Lookup(code string) (Definition, bool) {
	d, ok := t.defs[code]
	return d, ok
}

// Len returns the number of registered codes.
func (t Table) Len() int {
	return len(t.defs)
}

// Definitions returns a copy of the registered definitions, in no
// particular order.
func (t Table) Definitions() []Definition {
	defs := make([]Definition, 0, len(t.defs))
	for _, d := range t.defs {
		defs = append(defs, d)
	}
	return defs
}

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// Default returns the Table of Application Identifiers defined by the GS1
// General Specifications. It's built on first use and shared by all
// callers thereafter.
func Default() Table {
	defaultOnce.Do(func() {
		t, err := NewTable(defaultDefinitions()...)
		if err != nil {
			// the default definitions are compiled in; a bad one is a bug
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
