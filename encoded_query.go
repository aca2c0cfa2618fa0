package tfs

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-faster/errors"

	"github.com/go-faster/tfs/proto"
)

// searchURL is the consumer endpoint the encoded query targets.
const searchURL = "https://www.google.com/travel/flights/search"

// EncodedQuery owns a validated SearchQuery and its wire encoding.
// Values are immutable after construction.
type EncodedQuery struct {
	query    proto.SearchQuery
	raw      []byte
	language string
	currency string
}

func newEncodedQuery(q proto.SearchQuery, o buildOptions) *EncodedQuery {
	return &EncodedQuery{
		query:    q,
		raw:      proto.Encode(q, o.version),
		language: o.language,
		currency: o.currency,
	}
}

// DecodeQuery decodes wire bytes produced with schema version v.
func DecodeQuery(data []byte, v Version) (*EncodedQuery, error) {
	q, err := proto.Decode(data, v)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return &EncodedQuery{
		query: q,
		raw:   append([]byte(nil), data...),
	}, nil
}

// DecodeText decodes a base64 tfs string produced with schema
// version v.
func DecodeText(s string, v Version) (*EncodedQuery, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "base64")
	}
	return DecodeQuery(data, v)
}

// Query returns the typed query value.
func (e *EncodedQuery) Query() proto.SearchQuery {
	return e.query
}

// Bytes returns the raw wire-format encoding.
func (e *EncodedQuery) Bytes() []byte {
	return e.raw
}

// Text returns the standard base64 form of Bytes, reversible via
// standard base64 decoding.
func (e *EncodedQuery) Text() string {
	return base64.StdEncoding.EncodeToString(e.raw)
}

// URL returns the flight search URL carrying the encoded query.
func (e *EncodedQuery) URL() string {
	var sb strings.Builder
	sb.WriteString(searchURL)
	sb.WriteString("?tfs=")
	sb.WriteString(url.QueryEscape(e.Text()))
	if e.language != "" {
		sb.WriteString("&hl=")
		sb.WriteString(url.QueryEscape(e.language))
	}
	if e.currency != "" {
		sb.WriteString("&curr=")
		sb.WriteString(url.QueryEscape(e.currency))
	}
	return sb.String()
}

// Params returns the query parameters in url.Values form.
func (e *EncodedQuery) Params() url.Values {
	v := url.Values{"tfs": []string{e.Text()}}
	if e.language != "" {
		v.Set("hl", e.language)
	}
	if e.currency != "" {
		v.Set("curr", e.currency)
	}
	return v
}

// DebugString returns a human-readable dump of the typed query and
// its raw bytes. The format is diagnostic only and unstable.
func (e *EncodedQuery) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", e.query)
	fmt.Fprintf(&sb, "raw (%d bytes):\n%s", len(e.raw), hex.Dump(e.raw))
	return sb.String()
}
