/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elements

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"testing"
)

func mustDecode(t *testing.T, payload string) Record {
	t.Helper()
	r, err := Decode(payload)
	if err != nil {
		t.Fatalf("failed to decode %q: %+v", payload, err)
	}
	return r
}

func TestRecord_Value(t *testing.T) {
	w := expect.WrapT(t)
	r := mustDecode(t, "010061414100734910LOT17B")

	v, err := r.Value("01")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(v, "00614141007349")

	v, err = r.Value("10")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(v, "LOT17B")

	_, err = r.Value("21")
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrAINotFound)
}

func TestRecord_Numeric(t *testing.T) {
	type test struct {
		name    string
		payload string
		code    string
		value   float64
		bad     bool
	}

	pass := func(name, payload, code string, value float64) test {
		return test{name: name, payload: payload, code: code, value: value}
	}
	fail := func(name, payload, code string) test {
		return test{name: name, payload: payload, code: code, bad: true}
	}

	for i, tt := range []test{
		pass("two implied decimals", "3202001234", "3202", 12.34),
		pass("no implied decimals", "3100001234", "3100", 1234),
		pass("five implied decimals", "3105001234", "3105", 0.01234),
		pass("logistic weight", "3302000500", "3302", 5),
		pass("count of trade items", "3712", "37", 12),
		pass("item count, no scaling", "30170", "30", 170),
		pass("count with leading zeros", "3700012345", "37", 12345),

		fail("AI without a numeric form", "10123456", "10"),
		fail("letters in a measure value", "320212A456", "3202"),
		fail("letters in a count", "37AB", "37"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			r := mustDecode(t, tt.payload)

			n, err := r.Numeric(tt.code)
			if tt.bad {
				w.Logf("%+v", err)
				w.ShouldFail(err)
				w.ShouldBeEqual(errors.Cause(err), ErrNonNumericValue)
				return
			}
			w.ShouldSucceed(err)
			w.ShouldBeEqual(n, tt.value)
		})
	}
}

func TestRecord_Numeric_missingAI(t *testing.T) {
	w := expect.WrapT(t)
	_, err := mustDecode(t, "3712").Numeric("30")
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrAINotFound)
}

func TestRecord_RawNumeric(t *testing.T) {
	w := expect.WrapT(t)

	n, err := mustDecode(t, "100042").RawNumeric("10")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, float64(42))

	// no implied decimal point, even for the measure AIs
	n, err = mustDecode(t, "3202001234").RawNumeric("3202")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(n, float64(1234))

	_, err = mustDecode(t, "10LOT17B").RawNumeric("10")
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrNonNumericValue)

	_, err = mustDecode(t, "100042").RawNumeric("21")
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrAINotFound)
}

func TestRecord_DueDate(t *testing.T) {
	w := expect.WrapT(t)

	d, err := mustDecode(t, "12230415").DueDate()
	w.As("literal day").ShouldSucceed(err)
	w.ShouldBeEqual(d.Format("2006-01-02"), "2023-04-15")

	d, err = mustDecode(t, "12230400").DueDate()
	w.As("end of month").ShouldSucceed(err)
	w.ShouldBeEqual(d.Format("2006-01-02"), "2023-04-30")

	d, err = mustDecode(t, "12240200").DueDate()
	w.As("end of leap february").ShouldSucceed(err)
	w.ShouldBeEqual(d.Format("2006-01-02"), "2024-02-29")

	d, err = mustDecode(t, "12231200").DueDate()
	w.As("end of december").ShouldSucceed(err)
	w.ShouldBeEqual(d.Format("2006-01-02"), "2023-12-31")

	_, err = mustDecode(t, "0100614141007349").DueDate()
	w.As("absent").ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrAINotFound)

	for _, payload := range []string{
		"12231315", // month 13
		"12230432", // day 32
		"12230230", // February 30th
		"12000000", // month 0
		"12ABCDEF", // not digits
	} {
		_, err = mustDecode(t, payload).DueDate()
		w.As(payload).ShouldFail(err)
		w.As(payload).ShouldBeEqual(errors.Cause(err), ErrInvalidDate)
	}
}
