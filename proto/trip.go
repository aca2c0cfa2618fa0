package proto

//go:generate go run github.com/dmarkham/enumer -type Trip -trimprefix Trip -output trip_gen.go

// Trip is the itinerary shape of a search.
type Trip byte

// Possible trip types.
const (
	TripUnknown   Trip = 0
	TripRoundTrip Trip = 1
	TripOneWay    Trip = 2
	TripMultiCity Trip = 3
)

// TripDefault reports the wire default of version v. The default is
// never serialized.
func TripDefault(v Version) Trip {
	if FeatureExplicitUnknown.In(v) {
		return TripUnknown
	}
	return TripRoundTrip
}

// tripFromWire maps a decoded value to Trip, falling back to the
// version default for values outside the schema.
func tripFromWire(x uint64, v Version) Trip {
	t := Trip(x)
	if x > uint64(TripMultiCity) || !t.IsATrip() {
		return TripDefault(v)
	}
	if t == TripUnknown && !FeatureExplicitUnknown.In(v) {
		return TripDefault(v)
	}
	return t
}
