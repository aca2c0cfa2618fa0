package proto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlightLeg_Encode(t *testing.T) {
	var b Buffer
	jfkLax().EncodeAware(&b, Version2)
	require.Equal(t,
		"120a323032342d30312d30316a0512034a464b720512034c4158",
		hex.EncodeToString(b.Buf),
	)
}

func TestFlightLeg_MaxStops(t *testing.T) {
	leg := jfkLax()
	leg.MaxStops = 1

	t.Run("Version2", func(t *testing.T) {
		var b Buffer
		leg.EncodeAware(&b, Version2)
		require.Contains(t, hex.EncodeToString(b.Buf), "2801")

		var dec FlightLeg
		require.NoError(t, dec.DecodeAware(b.Reader(), Version2))
		require.Equal(t, leg, dec)
	})
	t.Run("Version1", func(t *testing.T) {
		// The legacy scheme has no max stops field.
		var b Buffer
		leg.EncodeAware(&b, Version1)
		plain := jfkLax()
		var expected Buffer
		plain.EncodeAware(&expected, Version1)
		require.Equal(t, expected.Buf, b.Buf)
	})
	t.Run("ZeroElided", func(t *testing.T) {
		var b, expected Buffer
		jfkLax().EncodeAware(&expected, Version2)
		zero := jfkLax()
		zero.MaxStops = 0
		zero.EncodeAware(&b, Version2)
		require.Equal(t, expected.Buf, b.Buf)
	})
}

func TestFlightLeg_Airlines(t *testing.T) {
	leg := FlightLeg{Date: "2024-01-01", Airlines: []string{"AA", "STAR_ALLIANCE"}}

	t.Run("Version2", func(t *testing.T) {
		var b Buffer
		leg.EncodeAware(&b, Version2)

		var dec FlightLeg
		require.NoError(t, dec.DecodeAware(b.Reader(), Version2))
		require.Equal(t, leg, dec)
	})
	t.Run("Version1SkipsRecords", func(t *testing.T) {
		// A Version1 consumer sees airline records as unknown fields.
		var b Buffer
		leg.EncodeAware(&b, Version2)

		var dec FlightLeg
		require.NoError(t, dec.DecodeAware(b.Reader(), Version1))
		require.Empty(t, dec.Airlines)
		require.Equal(t, leg.Date, dec.Date)
	})
}

func TestFlightLeg_UnknownFieldThenDate(t *testing.T) {
	var b Buffer
	b.PutVarint(7, 5) // not in the schema
	b.PutString(legFieldDate, "2024-05-01")
	require.Equal(t, "3805120a323032342d30352d3031", hex.EncodeToString(b.Buf))

	var dec FlightLeg
	require.NoError(t, dec.DecodeAware(b.Reader(), Version2))
	require.Equal(t, "2024-05-01", dec.Date)
}

func TestAirport_Elision(t *testing.T) {
	var b Buffer
	Airport{}.EncodeAware(&b, Version2)
	require.Empty(t, b.Buf)

	b.Reset()
	Airport{Code: "JFK"}.EncodeAware(&b, Version2)
	require.Equal(t, "12034a464b", hex.EncodeToString(b.Buf))
}
