// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/cpmech/gosl/chk"

// panicDims aborts on an Apply dimension mismatch. Per spec.md §7 this is
// a precondition violation: fatal, no recovery attempted.
func panicDims(op, which string, got, want int) {
	chk.Panic("%s.Apply: %s has size %d; expected %d", op, which, got, want)
}
