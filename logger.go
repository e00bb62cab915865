package main

import (
	"net/netip"
	"os"

	"github.com/rs/zerolog"

	"github.com/2ip-api/twoip/twoiplib"
)

type logger struct {
	lookupLog  zerolog.Logger
	addressLog zerolog.Logger
}

func (l *logger) LookupError(addr netip.Addr, kind twoiplib.LookupKind, err error) {
	l.lookupLog.Error().Stringer("kind", kind).Stringer("ip", addr).Err(err).Msg("")
}

func (l *logger) InvalidAddress(input string, err error) {
	l.addressLog.Warn().Str("input", input).Err(err).Msg("Address was skipped")
}

func newLogger() twoiplib.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog:  zerolog.New(os.Stderr).With().Timestamp().Stack().Str("event_name", "lookup").Logger(),
		addressLog: zerolog.New(os.Stderr).With().Timestamp().Stack().Str("event_name", "address").Logger(),
	}
}
