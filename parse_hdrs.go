// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package htparse

import (
	"github.com/intuitivelabs/bytescase"
)

// hdrEval records which semantically significant header is currently
// having its value parsed. Headers outside the recognised set get
// hevalNone (the value is reported via the HdrVal hook but not
// interpreted).
type hdrEval uint8

const (
	hevalNone hdrEval = iota
	hevalConnection
	hevalProxyConnection
	hevalContentLength
	hevalTransferEncoding
	hevalHostname
	hevalContentType
)

// pretty names for debugging and error reporting
var hevalStr = [...]string{
	hevalNone:             "nil",
	hevalConnection:       "Connection",
	hevalProxyConnection:  "Proxy-Connection",
	hevalContentLength:    "Content-Length",
	hevalTransferEncoding: "Transfer-Encoding",
	hevalHostname:         "Host",
	hevalContentType:      "Content-Type",
}

// String implements the Stringer interface.
func (e hdrEval) String() string {
	if int(e) >= len(hevalStr) {
		return "invalid"
	}
	return hevalStr[e]
}

// associates header name (as byte slice) to its hdrEval tag
type hdr2Eval struct {
	n []byte
	e hdrEval
}

// list of header-name <-> eval tag correspondence
// (always use lowercase)
var hdrName2Eval = [...]hdr2Eval{
	{n: []byte("host"), e: hevalHostname},
	{n: []byte("connection"), e: hevalConnection},
	{n: []byte("content-type"), e: hevalContentType},
	{n: []byte("content-length"), e: hevalContentLength},
	{n: []byte("proxy-connection"), e: hevalProxyConnection},
	{n: []byte("transfer-encoding"), e: hevalTransferEncoding},
}

const (
	hnBitsLen   uint = 3 // after changing this re-run testing
	hnBitsFChar uint = 5
)

var hdrNameLookup [1 << (hnBitsLen + hnBitsFChar)][]hdr2Eval

func hashHdrName(n []byte) int {
	// simple hash:
	//           1stchar & mC | (len &mL<< bitsFChar)
	const (
		mC = (1 << hnBitsFChar) - 1
		mL = (1 << hnBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << hnBitsFChar)
}

func init() {
	// init lookup arrays
	for _, h := range hdrName2Eval {
		i := hashHdrName(h.n)
		hdrNameLookup[i] = append(hdrNameLookup[i], h)
	}
}

// getHdrEval returns the eval tag for a header name, hevalNone if the
// header is not in the recognised set. The name comparison is case
// insensitive and the name must carry no surrounding white space.
func getHdrEval(name []byte) hdrEval {
	if len(name) == 0 {
		return hevalNone
	}
	i := hashHdrName(name)
	for _, h := range hdrNameLookup[i] {
		if bytescase.CmpEq(name, h.n) {
			return h.e
		}
	}
	return hevalNone
}

// recognised header values (always lowercase, compared case
// insensitively)
var (
	valKeepAlive = []byte("keep-alive")
	valClose     = []byte("close")
	valChunked   = []byte("chunked")
	valMultipart = []byte("multipart")
)

// evalHdrVal interprets a fully accumulated header value line according
// to the current eval tag, updating flags and body length state.
// Returns ErrTooBig on Content-Length overflow (or a non numeric
// Content-Length), ErrNone otherwise. Hostname emission is handled by
// the caller (it needs the hook table).
func (p *Parser) evalHdrVal(val []byte) Error {
	switch p.heval {
	case hevalContentLength:
		var ok bool
		if p.contentLen, ok = strToU64(val); !ok {
			return ErrTooBig
		}
		p.origContentLen = p.contentLen
	case hevalConnection:
		switch len(val) {
		case len(valKeepAlive):
			if bytescase.CmpEq(val, valKeepAlive) {
				p.flags |= flagKeepAlive
			}
		case len(valClose):
			if bytescase.CmpEq(val, valClose) {
				p.flags |= flagClose
			}
		}
	case hevalTransferEncoding:
		if len(val) == len(valChunked) && bytescase.CmpEq(val, valChunked) {
			p.flags |= flagChunked
		}
	case hevalContentType:
		if len(val) >= len(valMultipart) &&
			bytescase.CmpEq(val[:len(valMultipart)], valMultipart) {
			p.multipart = true
		}
	case hevalNone, hevalProxyConnection, hevalHostname:
		// no value semantics (hostname handled at the call site)
	}
	return ErrNone
}
