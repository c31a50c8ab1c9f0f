/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elements

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
)

func TestIsEncodable(t *testing.T) {
	w := expect.WrapT(t)

	const set82 = `!"%&'()*+,-./0123456789:;<=>?_` +
		`ABCDEFGHIJKLMNOPQRSTUVWXYZ` +
		`abcdefghijklmnopqrstuvwxyz`
	w.ShouldBeEqual(len(set82), 82)
	w.ShouldBeTrue(IsEncodable(set82))
	w.ShouldBeTrue(IsEncodable(""))

	for _, bad := range []string{
		" ", "\x1d", "#", "$", "@", "[", "`", "{", "\x7f", "é", "LOT 1",
	} {
		w.As(bad).ShouldBeTrue(!IsEncodable(bad))
	}
}
