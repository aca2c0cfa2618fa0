package tfs_test

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/tfs"
	"github.com/go-faster/tfs/proto"
)

func jfkLax() []map[string]string {
	return []map[string]string{
		{"date": "2024-01-01", "from": "JFK", "to": "LAX"},
	}
}

func TestBuildQuery(t *testing.T) {
	q, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "one_way")
	require.NoError(t, err)

	const expHex = "1a1a120a323032342d30312d30316a0512034a464b720512034c41584801420101980102"
	require.Equal(t, expHex, hex.EncodeToString(q.Bytes()))
	require.Equal(t, "GhoSCjIwMjQtMDEtMDFqBRIDSkZLcgUSA0xBWEgBQgEBmAEC", q.Text())

	v := q.Query()
	require.Equal(t, proto.SeatEconomy, v.Seat)
	require.Equal(t, proto.TripOneWay, v.Trip)
	require.Equal(t, []proto.Passenger{proto.PassengerAdult}, v.Passengers)
	require.Len(t, v.Legs, 1)
	require.Equal(t, "2024-01-01", v.Legs[0].Date)
	require.Equal(t, "JFK", v.Legs[0].From.Code)
	require.Equal(t, "LAX", v.Legs[0].To.Code)
}

func TestBuildQuery_Version1(t *testing.T) {
	q, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "one_way",
		tfs.WithVersion(tfs.Version1),
	)
	require.NoError(t, err)

	// Economy is the legacy wire default, so the seat record is gone.
	const expHex = "1a1a120a323032342d30312d30316a0512034a464b720512034c4158420101980102"
	require.Equal(t, expHex, hex.EncodeToString(q.Bytes()))
}

func TestBuildQuery_Rejection(t *testing.T) {
	t.Run("SeatWrongCase", func(t *testing.T) {
		_, err := tfs.BuildQuery(jfkLax(), "Economy", []string{"adult"}, "one_way")
		var unknownEnum *tfs.UnknownEnumValueError
		require.ErrorAs(t, err, &unknownEnum)
		require.Equal(t, "seat", unknownEnum.Field)
		require.Equal(t, "Economy", unknownEnum.Value)
	})
	t.Run("UnknownLegKey", func(t *testing.T) {
		legs := []map[string]string{
			{"date": "2024-01-01", "origin": "JFK", "to": "LAX"},
		}
		_, err := tfs.BuildQuery(legs, "economy", []string{"adult"}, "one_way")
		var unknownField *tfs.UnknownFieldNameError
		require.ErrorAs(t, err, &unknownField)
		require.Equal(t, "origin", unknownField.Name)
	})
	t.Run("UnknownTrip", func(t *testing.T) {
		_, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "oneway")
		var unknownEnum *tfs.UnknownEnumValueError
		require.ErrorAs(t, err, &unknownEnum)
		require.Equal(t, "trip", unknownEnum.Field)
	})
	t.Run("UnknownPassenger", func(t *testing.T) {
		_, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult", "Child"}, "one_way")
		var unknownEnum *tfs.UnknownEnumValueError
		require.ErrorAs(t, err, &unknownEnum)
		require.Equal(t, "passengers", unknownEnum.Field)
		require.Equal(t, "Child", unknownEnum.Value)
	})
}

func TestBuildQuery_PassengerMix(t *testing.T) {
	t.Run("TooMany", func(t *testing.T) {
		names := make([]string, 10)
		for i := range names {
			names[i] = "adult"
		}
		_, err := tfs.BuildQuery(jfkLax(), "economy", names, "one_way")
		var mix *tfs.PassengerMixError
		require.ErrorAs(t, err, &mix)
	})
	t.Run("LapInfantNeedsAdult", func(t *testing.T) {
		_, err := tfs.BuildQuery(jfkLax(), "economy",
			[]string{"child", "infant_on_lap"}, "one_way")
		var mix *tfs.PassengerMixError
		require.ErrorAs(t, err, &mix)
	})
	t.Run("OrderPreserved", func(t *testing.T) {
		q, err := tfs.BuildQuery(jfkLax(), "economy",
			[]string{"adult", "child", "adult"}, "one_way")
		require.NoError(t, err)
		require.Equal(t, []proto.Passenger{
			proto.PassengerAdult, proto.PassengerChild, proto.PassengerAdult,
		}, q.Query().Passengers)
	})
}

func TestBuildQuery_Options(t *testing.T) {
	t.Run("MaxStopsAndAirlines", func(t *testing.T) {
		q, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "one_way",
			tfs.WithMaxStops(1),
			tfs.WithAirlines("aa", "STAR_ALLIANCE"),
		)
		require.NoError(t, err)
		leg := q.Query().Legs[0]
		require.Equal(t, int32(1), leg.MaxStops)
		require.Equal(t, []string{"AA", "STAR_ALLIANCE"}, leg.Airlines)

		dec, err := tfs.DecodeQuery(q.Bytes(), tfs.Version2)
		require.NoError(t, err)
		require.Equal(t, q.Query(), dec.Query())
	})
	t.Run("BadAirline", func(t *testing.T) {
		_, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "one_way",
			tfs.WithAirlines("DELTA"),
		)
		var unknownEnum *tfs.UnknownEnumValueError
		require.ErrorAs(t, err, &unknownEnum)
		require.Equal(t, "airlines", unknownEnum.Field)
		require.Equal(t, "DELTA", unknownEnum.Value)
	})
}

func TestEncodedQuery_Text(t *testing.T) {
	seats := []string{"economy", "premium_economy", "business", "first"}
	trips := []string{"round_trip", "one_way", "multi_city"}
	for _, seat := range seats {
		for _, trip := range trips {
			q, err := tfs.BuildQuery(jfkLax(), seat, []string{"adult", "child"}, trip)
			require.NoError(t, err)

			decoded, err := base64.StdEncoding.DecodeString(q.Text())
			require.NoError(t, err)
			require.Equal(t, q.Bytes(), decoded)
		}
	}
}

func TestEncodedQuery_URL(t *testing.T) {
	q, err := tfs.BuildQuery(jfkLax(), "economy", []string{"adult"}, "one_way",
		tfs.WithLanguage("en-US"),
		tfs.WithCurrency("USD"),
	)
	require.NoError(t, err)

	u, err := url.Parse(q.URL())
	require.NoError(t, err)
	require.Equal(t, "www.google.com", u.Host)
	require.Equal(t, "/travel/flights/search", u.Path)
	params := u.Query()
	require.Equal(t, q.Text(), params.Get("tfs"))
	require.Equal(t, "en-US", params.Get("hl"))
	require.Equal(t, "USD", params.Get("curr"))

	require.Equal(t, params, q.Params())
}

func TestEncodedQuery_DebugString(t *testing.T) {
	q, err := tfs.BuildQuery(jfkLax(), "business", []string{"adult"}, "round_trip")
	require.NoError(t, err)

	s := q.DebugString()
	require.Contains(t, s, "seat=Business")
	require.Contains(t, s, "trip=RoundTrip")
	require.Contains(t, s, "JFK")
	require.Contains(t, s, "raw (")
}

func TestDecodeText(t *testing.T) {
	q, err := tfs.BuildQuery(jfkLax(), "first", []string{"adult", "infant_on_lap"}, "round_trip")
	require.NoError(t, err)

	dec, err := tfs.DecodeText(q.Text(), tfs.Version2)
	require.NoError(t, err)
	require.Equal(t, q.Query(), dec.Query())
	require.Equal(t, q.Bytes(), dec.Bytes())

	t.Run("BadBase64", func(t *testing.T) {
		_, err := tfs.DecodeText("not base64!!", tfs.Version2)
		require.Error(t, err)
	})
	t.Run("Malformed", func(t *testing.T) {
		_, err := tfs.DecodeQuery([]byte{0x1a, 0xff}, tfs.Version2)
		var malformed *proto.MalformedInputError
		require.ErrorAs(t, err, &malformed)
	})
}

func TestBuildQuery_EmptyLegs(t *testing.T) {
	q, err := tfs.BuildQuery(nil, "economy", nil, "round_trip")
	require.NoError(t, err)
	// Version2 has zero sentinels, so economy and round_trip are both
	// written; legs and passengers are empty and elided.
	require.Equal(t, []byte{0x48, 0x01, 0x98, 0x01, 0x01}, q.Bytes())
}
