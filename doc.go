// Geolocator is a service to resolve geolocation data for IP addresses
// using local MaxMind GeoLite2 databases.
//
// You have an IP address like 81.2.69.142 and want to know a country,
// a city, coordinates and an autonomous system it belongs to. Geolocator
// answers with a single JSON record per address.
//
// Tool itself is organized into 3 logical parts:
//
// Geolib
//
// geolib is a main package of the application. It has a Resolver which
// merges city and ASN lookups into a flat record, resolves batches on a
// worker pool and exposes its own HTTP API.
//
// Databases
//
// This package opens MaxMind databases and implements point lookups
// for geolib. City database is mandatory, ASN database is optional.
//
// Geolocator
//
// A main package itself wires both geolib and databases. Resulting
// binary reads an HJSON config, starts http server and you can use it
// in your infrastructure as is.
package main
