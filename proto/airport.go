package proto

import (
	"io"

	"github.com/go-faster/errors"
)

// Airport wraps an IATA-style airport code.
type Airport struct {
	Code string
}

const airportFieldCode = 2

func (a Airport) String() string {
	return a.Code
}

// EncodeAware encodes to buffer version-aware.
func (a Airport) EncodeAware(b *Buffer, v Version) {
	if a.Code != "" {
		b.PutString(airportFieldCode, a.Code)
	}
}

// DecodeAware decodes from reader version-aware.
func (a *Airport) DecodeAware(r *Reader, v Version) error {
	for {
		field, w, err := r.Tag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "tag")
		}
		switch {
		case field == airportFieldCode && w == WireBytes:
			s, err := r.Str()
			if err != nil {
				return errors.Wrap(err, "code")
			}
			a.Code = s
		default:
			if err := r.Skip(w); err != nil {
				return errors.Wrap(err, "skip")
			}
		}
	}
}
