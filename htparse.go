// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package htparse implements an incremental, callback driven HTTP 1.x
// message parser.
// The parser consumes arbitrary sized chunks of a byte stream, advances
// an internal state machine and invokes optional caller supplied hooks
// (see Hooks) as structural elements of a request or reply are
// recognised. It never buffers the whole message: data carrying hooks
// receive slices pointing either into the caller input or into a fixed
// size internal scratch buffer, valid only for the duration of the call.
package htparse

// BufSize is the size of the internal scratch buffer. A single token
// (method, URI, header name or header value line) must be shorter than
// BufSize: once the buffer is full, the next input byte fails the parse
// with ErrTooBig.
const BufSize = 8192

const (
	cr = '\r'
	lf = '\n'
)

// Type selects between parsing requests and parsing replies.
// It is fixed at Init time.
type Type uint8

// parser types
const (
	TypeRequest Type = iota
	TypeResponse
)

// parser flags
type pFlags uint8

const (
	flagChunked pFlags = 1 << iota
	flagKeepAlive
	flagClose
	flagTrailing
)

// internal parser state
type pState uint8

const (
	sStart pState = iota
	sMethod
	sSpacesBeforeURI
	sSchema
	sSchemaSlash
	sSchemaSlashSlash
	sHost
	sHostIPv6
	sHostDone
	sPort
	sAfterSlashInURI
	sCheckURI
	sURI
	sHTTP09
	sHTTPH
	sHTTPHT
	sHTTPHTT
	sHTTPHTTP
	sFirstMajorDigit
	sMajorDigit
	sFirstMinorDigit
	sMinorDigit
	sSpacesAfterDigit
	sAlmostDone
	sDone
	sHdrlineStart
	sHdrlineHdrAlmostDone
	sHdrlineHdrDone
	sHdrlineHdrKey
	sHdrlineHdrSpaceBeforeVal
	sHdrlineHdrVal
	sHdrlineAlmostDone
	sBodyRead
	sChunkSizeStart
	sChunkSize
	sChunkSizeAlmostDone
	sChunkData
	sChunkDataAlmostDone
	sChunkDataDone
	sStatus
	sSpaceAfterStatus
	sStatusText
)

// Parser holds the complete parsing state for one message stream
// (typically one connection). It must be initialised with Init before
// the first Feed and must not be fed from more than one goroutine.
// The zero offset value -1 marks an absent URI component.
type Parser struct {
	err   Error
	state pState
	flags pFlags
	heval hdrEval

	typ    Type
	scheme Scheme
	method Method

	multipart bool
	major     uint8
	minor     uint8

	contentLen     uint64 // decremented as body data passes through
	origContentLen uint64 // original Content-Length or chunk size
	bytesRead      uint64 // bytes consumed by the current Feed call
	totalBytesRead uint64 // bytes consumed over the parser lifetime

	status      uint16 // reply status code, 0 for requests
	statusCount uint8  // status digits seen so far

	// offsets into buf[] locating URI components, -1 when absent
	schemeOffs int32
	hostOffs   int32
	portOffs   int32
	pathOffs   int32
	argsOffs   int32

	userdata interface{}

	bufIdx int32
	buf    [BufSize]byte // scratch for the current token
}

// NewParser allocates a Parser initialised for the given type.
func NewParser(typ Type) *Parser {
	p := &Parser{}
	p.Init(typ)
	return p
}

// Init (re-)initialises the parser for a new message stream of the
// given type. The scratch buffer contents are not cleared (only the
// length is reset), mirroring re-use between messages.
func (p *Parser) Init(typ Type) {
	buf := p.buf
	ud := p.userdata
	*p = Parser{}
	p.buf = buf
	p.userdata = ud
	p.state = sStart
	p.err = ErrNone
	p.method = MethodUnknown
	p.typ = typ
	p.resetOffsets()
}

func (p *Parser) resetOffsets() {
	p.schemeOffs = -1
	p.hostOffs = -1
	p.portOffs = -1
	p.pathOffs = -1
	p.argsOffs = -1
}

// GetError returns the error recorded by the last Feed call.
func (p *Parser) GetError() Error {
	return p.err
}

// Status returns the reply status code (0 for requests or before the
// status line was parsed).
func (p *Parser) Status() uint16 {
	return p.status
}

// GetMethod returns the recognised request method, MethodUnknown if the
// method token did not match any known method.
func (p *Parser) GetMethod() Method {
	return p.method
}

// MethodName returns the canonical method string, "" for MethodUnknown.
func (p *Parser) MethodName() string {
	return p.method.String()
}

// GetScheme returns the recognised URI scheme (SchemeNone for origin
// form request lines).
func (p *Parser) GetScheme() Scheme {
	return p.scheme
}

// Major returns the parsed protocol major version.
func (p *Parser) Major() uint8 {
	return p.major
}

// Minor returns the parsed protocol minor version.
func (p *Parser) Minor() uint8 {
	return p.minor
}

// SetMajor overrides the protocol major version.
func (p *Parser) SetMajor(major uint8) {
	p.major = major
}

// SetMinor overrides the protocol minor version.
func (p *Parser) SetMinor(minor uint8) {
	p.minor = minor
}

// Multipart returns true if a Content-Type header with a multipart
// value prefix was seen.
func (p *Parser) Multipart() bool {
	return p.multipart
}

// ContentPending returns the number of body bytes still expected in the
// current body or chunk.
func (p *Parser) ContentPending() uint64 {
	return p.contentLen
}

// ContentLength returns the original Content-Length value (or the size
// of the current chunk for chunked messages).
func (p *Parser) ContentLength() uint64 {
	return p.origContentLen
}

// BytesRead returns the number of bytes consumed by the current
// (last) Feed call.
func (p *Parser) BytesRead() uint64 {
	return p.bytesRead
}

// TotalBytesRead returns the number of bytes consumed over the parser
// lifetime.
func (p *Parser) TotalBytesRead() uint64 {
	return p.totalBytesRead
}

// Userdata returns the opaque value stored with SetUserdata.
func (p *Parser) Userdata() interface{} {
	return p.userdata
}

// SetUserdata attaches an opaque caller value to the parser. It is
// never interpreted.
func (p *Parser) SetUserdata(ud interface{}) {
	p.userdata = ud
}

// Chunked returns true if the message uses chunked transfer encoding.
func (p *Parser) Chunked() bool {
	return p.flags&flagChunked != 0
}

// ShouldKeepAlive reports whether the connection should be kept open
// after the current message: for protocol versions >= 1.1 unless a
// Connection: close header was seen, for older versions only if a
// Connection: Keep-Alive header was seen.
func (p *Parser) ShouldKeepAlive() bool {
	if p.major > 1 || (p.major == 1 && p.minor >= 1) {
		return p.flags&flagClose == 0
	}
	return p.flags&flagKeepAlive != 0
}
