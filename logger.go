package main

import (
	"io"
	"net"

	"github.com/9seconds/geolocator/geolib"
	"github.com/rs/zerolog"
)

type logger struct {
	lookupLog   zerolog.Logger
	databaseLog zerolog.Logger
}

func (l *logger) LookupError(ip net.IP, name string, err error) {
	l.lookupLog.Error().Str("database", name).Stringer("ip", ip).Err(err).Msg("")
}

func (l *logger) DatabaseInfo(name, msg string) {
	l.databaseLog.Info().Str("database", name).Msg(msg)
}

func (l *logger) DatabaseError(name string, err error) {
	l.databaseLog.Error().Str("database", name).Err(err).Msg("")
}

func newLogger(w io.Writer) geolib.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog:   zerolog.New(w).With().Timestamp().Str("event_name", "lookup").Logger(),
		databaseLog: zerolog.New(w).With().Timestamp().Str("event_name", "database").Logger(),
	}
}

func newServerLogger(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return zerolog.New(w).With().Timestamp().Str("event_name", "server").Logger()
}
