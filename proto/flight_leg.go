package proto

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// FlightLeg is one origin/destination/date unit of an itinerary.
//
// Nil From or To means the airport is unset. MaxStops zero means
// unconstrained and is never serialized. MaxStops and Airlines exist
// since Version2 only.
type FlightLeg struct {
	Date     string
	From     *Airport
	To       *Airport
	MaxStops int32
	Airlines []string
}

// FlightLeg field numbers.
const (
	legFieldDate     = 2
	legFieldMaxStops = 5
	legFieldAirlines = 6
	legFieldFrom     = 13
	legFieldTo       = 14
)

func (f FlightLeg) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "date=%s", f.Date)
	if f.From != nil {
		fmt.Fprintf(&sb, " from=%s", f.From)
	}
	if f.To != nil {
		fmt.Fprintf(&sb, " to=%s", f.To)
	}
	if f.MaxStops != 0 {
		fmt.Fprintf(&sb, " max_stops=%d", f.MaxStops)
	}
	if len(f.Airlines) > 0 {
		fmt.Fprintf(&sb, " airlines=%s", strings.Join(f.Airlines, ","))
	}
	return sb.String()
}

// EncodeAware encodes to buffer version-aware.
func (f FlightLeg) EncodeAware(b *Buffer, v Version) {
	if f.Date != "" {
		b.PutString(legFieldDate, f.Date)
	}
	if f.From != nil {
		b.PutMessage(legFieldFrom, *f.From, v)
	}
	if f.To != nil {
		b.PutMessage(legFieldTo, *f.To, v)
	}
	if FeatureMaxStops.In(v) && f.MaxStops != 0 {
		b.PutVarint(legFieldMaxStops, uint64(f.MaxStops))
	}
	if FeatureAirlines.In(v) {
		for _, a := range f.Airlines {
			b.PutString(legFieldAirlines, a)
		}
	}
}

// DecodeAware decodes from reader version-aware.
func (f *FlightLeg) DecodeAware(r *Reader, v Version) error {
	for {
		field, w, err := r.Tag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "tag")
		}
		switch {
		case field == legFieldDate && w == WireBytes:
			s, err := r.Str()
			if err != nil {
				return errors.Wrap(err, "date")
			}
			f.Date = s
		case field == legFieldFrom && w == WireBytes:
			sub, err := r.Msg()
			if err != nil {
				return errors.Wrap(err, "from")
			}
			var a Airport
			if err := a.DecodeAware(sub, v); err != nil {
				return errors.Wrap(err, "from")
			}
			f.From = &a
		case field == legFieldTo && w == WireBytes:
			sub, err := r.Msg()
			if err != nil {
				return errors.Wrap(err, "to")
			}
			var a Airport
			if err := a.DecodeAware(sub, v); err != nil {
				return errors.Wrap(err, "to")
			}
			f.To = &a
		case field == legFieldMaxStops && w == WireVarint && FeatureMaxStops.In(v):
			n, err := r.Uvarint()
			if err != nil {
				return errors.Wrap(err, "max stops")
			}
			f.MaxStops = int32(n)
		case field == legFieldAirlines && w == WireBytes && FeatureAirlines.In(v):
			s, err := r.Str()
			if err != nil {
				return errors.Wrap(err, "airlines")
			}
			f.Airlines = append(f.Airlines, s)
		default:
			if err := r.Skip(w); err != nil {
				return errors.Wrap(err, "skip")
			}
		}
	}
}
