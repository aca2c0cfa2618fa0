// Package proto implements the tfs wire format, a tag-based binary
// encoding of flight search queries.
//
// The field numbers and wire types are an external compatibility
// contract and must not change.
package proto

// Version selects the wire schema.
type Version int

// Possible schema versions.
const (
	// Version1 is the legacy scheme: enumerations have no zero
	// sentinel and default to Economy and RoundTrip on the wire.
	Version1 Version = 1
	// Version2 adds explicit zero sentinels plus the MaxStops and
	// Airlines leg fields.
	Version2 Version = 2

	// Current is the scheme the upstream producer uses.
	Current = Version2
)

// Feature represents schema capability.
type Feature int

// Possible features.
const (
	FeatureExplicitUnknown Feature = 2
	FeatureMaxStops        Feature = 2
	FeatureAirlines        Feature = 2
)

// Version reports the schema version that introduced the feature.
func (f Feature) Version() Version {
	return Version(f)
}

// In reports whether feature is present in provided version.
func (f Feature) In(v Version) bool {
	return v >= f.Version()
}
