/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elements

import (
	"fmt"
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// dueDateAI is the AI whose YYMMDD value DueDate reads.
const dueDateAI = "12"

// Record holds the decoded fields of one element string, keyed by AI code.
//
// A Record belongs to the caller that decoded it. Its accessors are safe to
// call concurrently, since nothing mutates a Record after Decode returns it.
type Record struct {
	codes  []string
	values map[string]string
}

func newRecord() Record {
	return Record{values: make(map[string]string)}
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.codes)
}

// Codes returns the record's AI codes in the order their fields appeared in
// the payload.
func (r Record) Codes() []string {
	return append([]string(nil), r.codes...)
}

// String formats the record in the conventional human-readable form, each
// AI code parenthesized ahead of its value, in payload order:
// (01)00614141007349(10)LOT17B
func (r Record) String() string {
	b := &strings.Builder{}
	for _, code := range r.codes {
		fmt.Fprintf(b, "(%s)%s", code, r.values[code])
	}
	return b.String()
}

// Value returns the raw value decoded for this AI code, or ErrAINotFound
// if the record has no such field.
func (r Record) Value(code string) (string, error) {
	v, ok := r.values[code]
	if !ok {
		return "", errors.Wrapf(ErrAINotFound, "record has no AI %s", code)
	}
	return v, nil
}

// Numeric returns the value of this AI interpreted under GS1's numeric
// conventions.
//
// The measure AIs are four digits, and the fourth digit is not part of the
// quantity's identity: it gives the position of the field's implied decimal
// point. AI 3102 with value "001234" is 12.34 kg, while AI 3100 with the
// same value is 1234 kg. The count AIs 30 and 37 carry plain numbers with
// no implied decimal point.
//
// Any other AI, and any value that doesn't parse as a number, fails with
// ErrNonNumericValue. Parsing never consults the process locale.
func (r Record) Numeric(code string) (float64, error) {
	v, err := r.Value(code)
	if err != nil {
		return 0, err
	}

	switch {
	case code == "30" || code == "37":
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNonNumericValue,
				"AI %s value %q", code, v)
		}
		return n, nil
	case len(code) == 4:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrNonNumericValue,
				"AI %s value %q", code, v)
		}
		decimals := int(code[3] - '0')
		return float64(n) / math.Pow10(decimals), nil
	}
	return 0, errors.Wrapf(ErrNonNumericValue,
		"AI %s has no numeric interpretation", code)
}

// RawNumeric returns the value of this AI parsed as a plain decimal number,
// with no AI-specific scaling, or ErrNonNumericValue if it doesn't parse.
// Parsing never consults the process locale.
func (r Record) RawNumeric(code string) (float64, error) {
	v, err := r.Value(code)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNonNumericValue, "AI %s value %q", code, v)
	}
	return n, nil
}

// DueDate returns the date carried by AI 12, in UTC.
//
// The value is YYMMDD with years mapped to 2000-2099. A day of "00" means
// the last day of the given month (GS1's end-of-month convention), computed
// as the first day of the following month minus one day; any other day is
// taken literally.
//
// DueDate fails with ErrAINotFound if the record has no AI 12, and with
// ErrInvalidDate if the value doesn't conform to YYMMDD.
func (r Record) DueDate() (time.Time, error) {
	v, err := r.Value(dueDateAI)
	if err != nil {
		return time.Time{}, err
	}
	if len(v) != 6 {
		return time.Time{}, errors.Wrapf(ErrInvalidDate,
			"AI %s value %q is not YYMMDD", dueDateAI, v)
	}

	// the century is pinned so the two-digit year parses the same way
	// regardless of when it's parsed
	if v[4:] == "00" {
		first, err := time.Parse("20060102", "20"+v[:4]+"01")
		if err != nil {
			return time.Time{}, errors.Wrapf(ErrInvalidDate,
				"AI %s value %q is not YYMMDD", dueDateAI, v)
		}
		return first.AddDate(0, 1, -1), nil
	}

	t, err := time.Parse("20060102", "20"+v)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrInvalidDate,
			"AI %s value %q is not YYMMDD", dueDateAI, v)
	}
	return t, nil
}
