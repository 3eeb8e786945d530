// Package testmmdb builds small mmdb databases in memory. It is used by
// tests to get seeded city and ASN databases with known contents.
package testmmdb

import (
	"bytes"
	"fmt"
	"net"

	"github.com/maxmind/mmdbwriter"
	"github.com/maxmind/mmdbwriter/mmdbtype"
	"github.com/spf13/afero"
)

const (
	CityDatabaseType = "GeoLite2-City"
	ASNDatabaseType  = "GeoLite2-ASN"
)

type Network struct {
	CIDR   string
	Record mmdbtype.Map
}

// Build returns a serialized mmdb database of a given type.
func Build(databaseType string, networks ...Network) ([]byte, error) {
	tree, err := mmdbwriter.New(mmdbwriter.Options{
		DatabaseType: databaseType,
		RecordSize:   24,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create a tree: %w", err)
	}

	for _, v := range networks {
		_, network, err := net.ParseCIDR(v.CIDR)
		if err != nil {
			return nil, fmt.Errorf("incorrect network %s: %w", v.CIDR, err)
		}

		if err := tree.Insert(network, v.Record); err != nil {
			return nil, fmt.Errorf("cannot insert %s: %w", v.CIDR, err)
		}
	}

	buf := &bytes.Buffer{}

	if _, err := tree.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("cannot serialize a tree: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile builds a database and stores it in a given filesystem.
func WriteFile(fs afero.Fs, path, databaseType string, networks ...Network) error {
	data, err := Build(databaseType, networks...)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0o644)
}
