// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package htparse

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method is the type used to hold the various HTTP request methods.
type Method uint8

// method types, in wire-stable order
const (
	MethodGET Method = iota
	MethodHEAD
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodMKCOL
	MethodCOPY
	MethodMOVE
	MethodOPTIONS
	MethodPROPFIND
	MethodPROPPATCH
	MethodLOCK
	MethodUNLOCK
	MethodTRACE
	MethodCONNECT
	MethodPATCH
	MethodUnknown // must be last
)

// Method2Name translates between a numeric Method and the ASCII name.
var Method2Name = [MethodUnknown + 1][]byte{
	MethodGET:       []byte("GET"),
	MethodHEAD:      []byte("HEAD"),
	MethodPOST:      []byte("POST"),
	MethodPUT:       []byte("PUT"),
	MethodDELETE:    []byte("DELETE"),
	MethodMKCOL:     []byte("MKCOL"),
	MethodCOPY:      []byte("COPY"),
	MethodMOVE:      []byte("MOVE"),
	MethodOPTIONS:   []byte("OPTIONS"),
	MethodPROPFIND:  []byte("PROPFIND"),
	MethodPROPPATCH: []byte("PROPPATCH"),
	MethodLOCK:      []byte("LOCK"),
	MethodUNLOCK:    []byte("UNLOCK"),
	MethodTRACE:     []byte("TRACE"),
	MethodCONNECT:   []byte("CONNECT"),
	MethodPATCH:     []byte("PATCH"),
	MethodUnknown:   nil,
}

// Name returns the ASCII method name, nil for MethodUnknown.
func (m Method) Name() []byte {
	if m > MethodUnknown {
		return nil
	}
	return Method2Name[m]
}

// String implements the Stringer interface (converts the method to
// string, similar to Name()).
func (m Method) String() string {
	return string(m.Name())
}

// GetMethodNo converts from an ASCII method name to the corresponding
// numeric internal value. The comparison is case sensitive (methods are
// uppercase on the wire).
func GetMethodNo(buf []byte) Method {
	if len(buf) == 0 {
		return MethodUnknown
	}
	i := hashMthName(buf)
	for _, m := range mthNameLookup[i] {
		if bytes.Equal(buf, m.n) {
			return m.t
		}
	}
	return MethodUnknown
}

// magic values: after adding/removing methods run tests again
// looking for max. elem per bucket <= 2 for minimum hash size
const (
	mthBitsLen   uint = 3 //re-run tests after changing
	mthBitsFChar uint = 3
)

type mth2Type struct {
	n []byte
	t Method
}

var mthNameLookup [1 << (mthBitsLen + mthBitsFChar)][]mth2Type

func hashMthName(n []byte) int {
	const (
		mC = (1 << mthBitsFChar) - 1
		mL = (1 << mthBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << mthBitsFChar)
}

func init() {
	// init lookup method-to-type array
	for i := MethodGET; i < MethodUnknown; i++ {
		h := hashMthName(Method2Name[i])
		mthNameLookup[h] =
			append(mthNameLookup[h], mth2Type{Method2Name[i], i})
	}
}
