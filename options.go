package tfs

import "github.com/go-faster/tfs/proto"

type buildOptions struct {
	version  proto.Version
	maxStops int
	airlines []string
	language string
	currency string
}

// Option configures BuildQuery beyond its four core arguments.
type Option func(*buildOptions)

// WithVersion selects the wire schema version. Default is
// proto.Current.
func WithVersion(v Version) Option {
	return func(o *buildOptions) {
		o.version = v
	}
}

// WithMaxStops bounds the number of stops on every leg. Zero means
// unconstrained. Present in the encoding since Version2 only.
func WithMaxStops(n int) Option {
	return func(o *buildOptions) {
		o.maxStops = n
	}
}

// WithAirlines restricts every leg to the given two-letter airline
// codes or alliance names (SKYTEAM, STAR_ALLIANCE, ONEWORLD). Codes
// are uppercased. Present in the encoding since Version2 only.
func WithAirlines(codes ...string) Option {
	return func(o *buildOptions) {
		o.airlines = codes
	}
}

// WithLanguage sets the hl parameter of URL and Params.
func WithLanguage(lang string) Option {
	return func(o *buildOptions) {
		o.language = lang
	}
}

// WithCurrency sets the curr parameter of URL and Params.
func WithCurrency(curr string) Option {
	return func(o *buildOptions) {
		o.currency = curr
	}
}
