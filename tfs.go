// Package tfs builds the compact binary encoding of a flight search
// query and its base64 textual form, the payload of Google Flights
// ?tfs= URLs.
//
// The sole entry point is BuildQuery: it validates loosely-typed
// search criteria against closed enumerations, assembles a typed
// proto.SearchQuery and encodes it. Both codec and builder are pure
// functions over owned values and are safe for concurrent use.
package tfs

import (
	"fmt"
	"strings"

	"github.com/go-faster/tfs/proto"
)

// Version selects the wire schema, see proto.Version.
type Version = proto.Version

// Known schema versions.
const (
	Version1 = proto.Version1
	Version2 = proto.Version2
)

// Leg mapping keys accepted by BuildQuery. Any other key fails the
// whole build with UnknownFieldNameError.
const (
	legKeyDate = "date"
	legKeyFrom = "from"
	legKeyTo   = "to"
)

// Name lookup is case-sensitive by contract: no fuzzy matching, no
// case folding.
var (
	seatNames = map[string]proto.Seat{
		"economy":         proto.SeatEconomy,
		"premium_economy": proto.SeatPremiumEconomy,
		"business":        proto.SeatBusiness,
		"first":           proto.SeatFirst,
	}
	tripNames = map[string]proto.Trip{
		"round_trip": proto.TripRoundTrip,
		"one_way":    proto.TripOneWay,
		"multi_city": proto.TripMultiCity,
	}
	passengerNames = map[string]proto.Passenger{
		"adult":          proto.PassengerAdult,
		"child":          proto.PassengerChild,
		"infant_in_seat": proto.PassengerInfantInSeat,
		"infant_on_lap":  proto.PassengerInfantOnLap,
	}
)

// airlineAlliances are accepted in place of two-letter airline codes.
var airlineAlliances = map[string]struct{}{
	"SKYTEAM":       {},
	"STAR_ALLIANCE": {},
	"ONEWORLD":      {},
}

const maxPassengers = 9

// BuildQuery validates search criteria and returns their encoding.
//
// Each leg mapping may use only the keys "date", "from" and "to";
// seat, trip and passenger names must match their closed sets exactly.
// Leg and passenger order is preserved. Validation failures return
// typed errors; once input is validated, encoding cannot fail.
func BuildQuery(legs []map[string]string, seat string, passengers []string, trip string, opts ...Option) (*EncodedQuery, error) {
	o := buildOptions{version: proto.Current}
	for _, opt := range opts {
		opt(&o)
	}

	var q proto.SearchQuery

	seatValue, ok := seatNames[seat]
	if !ok {
		return nil, &UnknownEnumValueError{Field: "seat", Value: seat}
	}
	q.Seat = seatValue

	tripValue, ok := tripNames[trip]
	if !ok {
		return nil, &UnknownEnumValueError{Field: "trip", Value: trip}
	}
	q.Trip = tripValue

	var adults, infantsOnLap int
	for _, name := range passengers {
		p, ok := passengerNames[name]
		if !ok {
			return nil, &UnknownEnumValueError{Field: "passengers", Value: name}
		}
		switch p {
		case proto.PassengerAdult:
			adults++
		case proto.PassengerInfantOnLap:
			infantsOnLap++
		}
		q.Passengers = append(q.Passengers, p)
	}
	if len(q.Passengers) > maxPassengers {
		return nil, &PassengerMixError{
			Reason: fmt.Sprintf("too many passengers (%d > %d)", len(q.Passengers), maxPassengers),
		}
	}
	if infantsOnLap > adults {
		return nil, &PassengerMixError{
			Reason: "at least one adult per infant on lap",
		}
	}

	airlines, err := normalizeAirlines(o.airlines)
	if err != nil {
		return nil, err
	}

	for _, leg := range legs {
		var l proto.FlightLeg
		for k, value := range leg {
			switch k {
			case legKeyDate:
				l.Date = value
			case legKeyFrom:
				l.From = &proto.Airport{Code: value}
			case legKeyTo:
				l.To = &proto.Airport{Code: value}
			default:
				return nil, &UnknownFieldNameError{Name: k}
			}
		}
		l.MaxStops = int32(o.maxStops)
		l.Airlines = airlines
		q.Legs = append(q.Legs, l)
	}

	return newEncodedQuery(q, o), nil
}

// normalizeAirlines uppercases codes and checks each is a two-letter
// airline code or a known alliance name.
func normalizeAirlines(codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		u := strings.ToUpper(c)
		if len(u) != 2 {
			if _, ok := airlineAlliances[u]; !ok {
				return nil, &UnknownEnumValueError{Field: "airlines", Value: c}
			}
		}
		out = append(out, u)
	}
	return out, nil
}
