package proto

//go:generate go run github.com/dmarkham/enumer -type Seat -trimprefix Seat -output seat_gen.go

// Seat is the cabin class of a search.
type Seat byte

// Possible seat classes.
const (
	SeatUnknown        Seat = 0
	SeatEconomy        Seat = 1
	SeatPremiumEconomy Seat = 2
	SeatBusiness       Seat = 3
	SeatFirst          Seat = 4
)

// SeatDefault reports the wire default of version v. The default is
// never serialized.
func SeatDefault(v Version) Seat {
	if FeatureExplicitUnknown.In(v) {
		return SeatUnknown
	}
	return SeatEconomy
}

// seatFromWire maps a decoded value to Seat, falling back to the
// version default for values outside the schema.
func seatFromWire(x uint64, v Version) Seat {
	s := Seat(x)
	if x > uint64(SeatFirst) || !s.IsASeat() {
		return SeatDefault(v)
	}
	if s == SeatUnknown && !FeatureExplicitUnknown.In(v) {
		return SeatDefault(v)
	}
	return s
}
