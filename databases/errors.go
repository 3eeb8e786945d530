package databases

import "errors"

var (
	// ErrNoASNDatabase is returned on ASN lookups if handle was opened
	// without ASN database.
	ErrNoASNDatabase = errors.New("asn database is not available")

	// ErrUnexpectedDatabaseType is returned if a file is a valid mmdb
	// database but of a wrong kind, for example, city database was
	// given instead of ASN one.
	ErrUnexpectedDatabaseType = errors.New("unexpected database type")
)
