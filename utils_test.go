// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Test utils

package htparse

import (
	"math/rand"

	"github.com/intuitivelabs/bytescase"
)

// randomize case in a string
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			r[i] = bytescase.ByteToLower(b)
		case 1:
			r[i] = bytescase.ByteToUpper(b)
		default:
			r[i] = b
		}
	}
	return string(r)
}

// randSplit cuts buf into 1 to maxPieces random, possibly empty,
// consecutive pieces.
func randSplit(buf []byte, maxPieces int) [][]byte {
	n := 1 + rand.Intn(maxPieces)
	cuts := make([]int, 0, n+1)
	cuts = append(cuts, 0)
	for i := 1; i < n; i++ {
		cuts = append(cuts, rand.Intn(len(buf)+1))
	}
	cuts = append(cuts, len(buf))
	// order the cut points
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j] < cuts[j-1]; j-- {
			cuts[j], cuts[j-1] = cuts[j-1], cuts[j]
		}
	}
	pieces := make([][]byte, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		pieces = append(pieces, buf[cuts[i-1]:cuts[i]])
	}
	return pieces
}
