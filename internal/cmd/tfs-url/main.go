// Command tfs-url builds a flight search URL from flags.
package main

import (
	"context"
	"flag"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/go-faster/tfs"
	"github.com/go-faster/tfs/internal/app"
	"github.com/go-faster/tfs/internal/version"
)

func main() {
	var arg struct {
		Date       string
		From       string
		To         string
		ReturnDate string

		Seat string
		Trip string

		Adults        int
		Children      int
		InfantsInSeat int
		InfantsOnLap  int

		MaxStops int
		Airlines string
		Language string
		Currency string
	}
	flag.StringVar(&arg.Date, "date", "", "travel date, e.g. 2024-01-01")
	flag.StringVar(&arg.From, "from", "", "origin airport code")
	flag.StringVar(&arg.To, "to", "", "destination airport code")
	flag.StringVar(&arg.ReturnDate, "return", "", "return date (adds a return leg)")
	flag.StringVar(&arg.Seat, "seat", "economy", "seat class")
	flag.StringVar(&arg.Trip, "trip", "", "trip type (derived from -return when empty)")
	flag.IntVar(&arg.Adults, "adults", 1, "adult count")
	flag.IntVar(&arg.Children, "children", 0, "child count")
	flag.IntVar(&arg.InfantsInSeat, "infants-in-seat", 0, "infant in seat count")
	flag.IntVar(&arg.InfantsOnLap, "infants-on-lap", 0, "infant on lap count")
	flag.IntVar(&arg.MaxStops, "max-stops", 0, "maximum stops per leg, 0 is unconstrained")
	flag.StringVar(&arg.Airlines, "airlines", "", "comma-separated airline codes or alliances")
	flag.StringVar(&arg.Language, "hl", "", "language")
	flag.StringVar(&arg.Currency, "curr", "", "currency")
	flag.Parse()

	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		lg.Debug("Start", zap.String("version", version.Get().Raw))

		legs := []map[string]string{
			{"date": arg.Date, "from": arg.From, "to": arg.To},
		}
		if arg.ReturnDate != "" {
			legs = append(legs, map[string]string{
				"date": arg.ReturnDate, "from": arg.To, "to": arg.From,
			})
		}
		trip := arg.Trip
		if trip == "" {
			trip = "one_way"
			if arg.ReturnDate != "" {
				trip = "round_trip"
			}
		}

		var passengers []string
		add := func(name string, n int) {
			for i := 0; i < n; i++ {
				passengers = append(passengers, name)
			}
		}
		add("adult", arg.Adults)
		add("child", arg.Children)
		add("infant_in_seat", arg.InfantsInSeat)
		add("infant_on_lap", arg.InfantsOnLap)

		var opts []tfs.Option
		if arg.MaxStops > 0 {
			opts = append(opts, tfs.WithMaxStops(arg.MaxStops))
		}
		if arg.Airlines != "" {
			opts = append(opts, tfs.WithAirlines(strings.Split(arg.Airlines, ",")...))
		}
		if arg.Language != "" {
			opts = append(opts, tfs.WithLanguage(arg.Language))
		}
		if arg.Currency != "" {
			opts = append(opts, tfs.WithCurrency(arg.Currency))
		}

		q, err := tfs.BuildQuery(legs, arg.Seat, passengers, trip, opts...)
		if err != nil {
			return errors.Wrap(err, "build")
		}

		lg.Info("Encoded",
			zap.String("tfs", q.Text()),
			zap.String("url", q.URL()),
		)
		return nil
	})
}
