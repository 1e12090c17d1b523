// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package htparse

// Error is the numeric parse error code.
// The values and their order are stable and part of the public
// contract; String() maps them to their canonical identifiers.
type Error uint32

// error codes
const (
	ErrNone Error = iota
	ErrTooBig
	ErrInvalMethod
	ErrInvalReqLine
	ErrInvalSchema
	ErrInvalProto
	ErrInvalVer
	ErrInvalHdr
	ErrInvalChunkSz
	ErrInvalChunk
	ErrInvalState
	ErrUser
	ErrUnknown
)

var errStrMap = [...]string{
	ErrNone:         "evhtp_parser_error_none",
	ErrTooBig:       "evhtp_parser_error_too_big",
	ErrInvalMethod:  "evhtp_parser_error_invalid_method",
	ErrInvalReqLine: "evhtp_parser_error_invalid_requestline",
	ErrInvalSchema:  "evhtp_parser_error_invalid_schema",
	ErrInvalProto:   "evhtp_parser_error_invalid_protocol",
	ErrInvalVer:     "evhtp_parser_error_invalid_version",
	ErrInvalHdr:     "evhtp_parser_error_invalid_header",
	ErrInvalChunkSz: "evhtp_parser_error_invalid_chunk_size",
	ErrInvalChunk:   "evhtp_parser_error_invalid_chunk",
	ErrInvalState:   "evhtp_parser_error_invalid_state",
	ErrUser:         "evhtp_parser_error_user",
	ErrUnknown:      "evhtp_parser_error_unknown",
}

// String implements the Stringer interface, returning the canonical
// error identifier.
func (e Error) String() string {
	if int(e) >= len(errStrMap) {
		return "evhtp_parser_no_such_error"
	}
	return errStrMap[e]
}

// Strerror returns the canonical identifier of the error recorded by
// the last Feed call.
func (p *Parser) Strerror() string {
	return p.err.String()
}
