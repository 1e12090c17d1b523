// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package htparse

import (
	"bytes"
)

// Scheme is the type used to hold the recognised URI schemes.
type Scheme uint8

// scheme types
const (
	SchemeNone Scheme = iota
	SchemeFTP
	SchemeHTTP
	SchemeHTTPS
	SchemeNFS
	SchemeUnknown // must be last
)

var scheme2Name = [SchemeUnknown + 1][]byte{
	SchemeNone:    nil,
	SchemeFTP:     []byte("ftp"),
	SchemeHTTP:    []byte("http"),
	SchemeHTTPS:   []byte("https"),
	SchemeNFS:     []byte("nfs"),
	SchemeUnknown: nil,
}

// Name returns the ASCII scheme name, nil for SchemeNone and
// SchemeUnknown.
func (s Scheme) Name() []byte {
	if s > SchemeUnknown {
		return nil
	}
	return scheme2Name[s]
}

// String implements the Stringer interface.
func (s Scheme) String() string {
	return string(s.Name())
}

// GetSchemeNo converts from an ASCII scheme name to the corresponding
// numeric value. The lookup is length indexed with a single compare per
// candidate; unrecognised schemes map to SchemeUnknown.
func GetSchemeNo(buf []byte) Scheme {
	switch len(buf) {
	case 3:
		if bytes.Equal(buf, scheme2Name[SchemeFTP]) {
			return SchemeFTP
		}
		if bytes.Equal(buf, scheme2Name[SchemeNFS]) {
			return SchemeNFS
		}
	case 4:
		if bytes.Equal(buf, scheme2Name[SchemeHTTP]) {
			return SchemeHTTP
		}
	case 5:
		if bytes.Equal(buf, scheme2Name[SchemeHTTPS]) {
			return SchemeHTTPS
		}
	}
	return SchemeUnknown
}
