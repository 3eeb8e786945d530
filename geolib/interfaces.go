package geolib

import "net"

// Database is a read-only point lookup interface over a city database
// and an optional ASN database. Implementations must be safe for
// concurrent use without external locking.
type Database interface {
	LookupCity(net.IP) (CityRecord, error)
	LookupASN(net.IP) (ASNRecord, error)
	HasASN() bool
}

type Logger interface {
	LookupError(ip net.IP, database string, err error)
	DatabaseInfo(database string, msg string)
	DatabaseError(database string, err error)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) LookupError(net.IP, string, error) {}
func (NoopLogger) DatabaseInfo(string, string)      {}
func (NoopLogger) DatabaseError(string, error)      {}
