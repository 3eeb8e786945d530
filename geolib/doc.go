// This package provides a set of structs and functions which are used
// to geolocate given IP addresses.
//
// geolib is core of the geolocator project. You can treat the rest of
// the application as an _example_ on how to use this library: how to
// load databases, how to pass parameters from HTTP requests, how to
// generate responses.
//
// Resolver is a main entity of the geolib. It takes a Database (a
// mandatory city database and an optional ASN database), looks up
// given IP addresses there and normalizes raw records into GeoRecord.
// If ASN database is absent or has no data for the address, ASN fields
// are simply left empty. A city database miss is the only error an
// individual lookup can return.
//
// Batches are resolved concurrently on a worker pool. A single bad
// address never fails the whole batch: each identifier ends up either
// in results or in errors of BatchResult.
package geolib
