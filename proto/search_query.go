package proto

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// SearchQuery aggregates search criteria: an ordered itinerary, one
// seat class, an ordered passenger mix and one trip type.
//
// The codec never mutates a value it did not itself build while
// decoding; encode borrows the value for the duration of the call.
type SearchQuery struct {
	Legs       []FlightLeg
	Seat       Seat
	Passengers []Passenger
	Trip       Trip
}

// SearchQuery field numbers.
const (
	queryFieldLegs       = 3
	queryFieldPassengers = 8
	queryFieldSeat       = 9
	queryFieldTrip       = 19
)

func (q SearchQuery) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trip=%s seat=%s passengers=[", q.Trip, q.Seat)
	for i, p := range q.Passengers {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("] legs=[")
	for i, l := range q.Legs {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// EncodeAware encodes to buffer version-aware.
//
// Fields at their version default are elided; repeated legs produce
// one record per leg in order; passengers are packed into a single
// length-delimited record.
func (q SearchQuery) EncodeAware(b *Buffer, v Version) {
	for _, l := range q.Legs {
		b.PutMessage(queryFieldLegs, l, v)
	}
	if q.Seat != SeatDefault(v) {
		b.PutVarint(queryFieldSeat, uint64(q.Seat))
	}
	if len(q.Passengers) > 0 {
		var sub Buffer
		for _, p := range q.Passengers {
			sub.PutUVarInt(uint64(p))
		}
		b.PutBytes(queryFieldPassengers, sub.Buf)
	}
	if q.Trip != TripDefault(v) {
		b.PutVarint(queryFieldTrip, uint64(q.Trip))
	}
}

// DecodeAware decodes from reader version-aware.
//
// Records may arrive in any order; unknown fields are skipped; enum
// values outside the schema decode to the version default. Absent
// seat and trip records leave the version default in place.
func (q *SearchQuery) DecodeAware(r *Reader, v Version) error {
	q.Seat = SeatDefault(v)
	q.Trip = TripDefault(v)
	for {
		field, w, err := r.Tag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "tag")
		}
		switch {
		case field == queryFieldLegs && w == WireBytes:
			sub, err := r.Msg()
			if err != nil {
				return errors.Wrap(err, "legs")
			}
			var l FlightLeg
			if err := l.DecodeAware(sub, v); err != nil {
				return errors.Wrap(err, "legs")
			}
			q.Legs = append(q.Legs, l)
		case field == queryFieldSeat && w == WireVarint:
			n, err := r.Uvarint()
			if err != nil {
				return errors.Wrap(err, "seat")
			}
			q.Seat = seatFromWire(n, v)
		case field == queryFieldPassengers && w == WireBytes:
			sub, err := r.Msg()
			if err != nil {
				return errors.Wrap(err, "passengers")
			}
			for sub.remaining() > 0 {
				n, err := sub.Uvarint()
				if err != nil {
					return errors.Wrap(err, "passengers")
				}
				q.Passengers = append(q.Passengers, passengerFromWire(n, v))
			}
		case field == queryFieldPassengers && w == WireVarint:
			// Unpacked record, one value. Writers pack, but a packed
			// repeated field must accept both forms.
			n, err := r.Uvarint()
			if err != nil {
				return errors.Wrap(err, "passengers")
			}
			q.Passengers = append(q.Passengers, passengerFromWire(n, v))
		case field == queryFieldTrip && w == WireVarint:
			n, err := r.Uvarint()
			if err != nil {
				return errors.Wrap(err, "trip")
			}
			q.Trip = tripFromWire(n, v)
		default:
			if err := r.Skip(w); err != nil {
				return errors.Wrap(err, "skip")
			}
		}
	}
}

// Encode encodes q with schema version v. Encoding never fails: the
// value is well-typed by construction.
func Encode(q SearchQuery, v Version) []byte {
	var b Buffer
	q.EncodeAware(&b, v)
	return b.Buf
}

// Decode decodes a SearchQuery from wire bytes of schema version v.
func Decode(data []byte, v Version) (SearchQuery, error) {
	var q SearchQuery
	if err := q.DecodeAware(NewReader(data), v); err != nil {
		return SearchQuery{}, err
	}
	return q, nil
}
