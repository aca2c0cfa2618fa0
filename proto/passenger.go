package proto

//go:generate go run github.com/dmarkham/enumer -type Passenger -trimprefix Passenger -output passenger_gen.go

// Passenger is one traveler in the passenger mix. The mix is an
// ordered repeated field: one value per traveler, in caller order.
type Passenger byte

// Possible passenger types.
const (
	PassengerUnknown      Passenger = 0
	PassengerAdult        Passenger = 1
	PassengerChild        Passenger = 2
	PassengerInfantInSeat Passenger = 3
	PassengerInfantOnLap  Passenger = 4
)

// PassengerDefault reports the wire default of version v.
func PassengerDefault(v Version) Passenger {
	if FeatureExplicitUnknown.In(v) {
		return PassengerUnknown
	}
	return PassengerAdult
}

// passengerFromWire maps a decoded value to Passenger, falling back to
// the version default for values outside the schema.
func passengerFromWire(x uint64, v Version) Passenger {
	p := Passenger(x)
	if x > uint64(PassengerInfantOnLap) || !p.IsAPassenger() {
		return PassengerDefault(v)
	}
	if p == PassengerUnknown && !FeatureExplicitUnknown.In(v) {
		return PassengerDefault(v)
	}
	return p
}
