package databases

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/9seconds/geolocator/geolib"
	"github.com/oschwald/geoip2-golang"
	"github.com/oschwald/maxminddb-golang"
	"github.com/spf13/afero"
)

const asnDatabaseTypeMarker = "ASN"

// Handle owns readers of city and ASN databases. Both are loaded into
// memory once and never change, so Handle is safe for concurrent use
// without any locking.
type Handle struct {
	city *maxminddb.Reader
	asn  *geoip2.Reader
}

func (h *Handle) LookupCity(ip net.IP) (geolib.CityRecord, error) {
	rv := geolib.CityRecord{}

	_, ok, err := h.city.LookupNetwork(ip, &rv)

	switch {
	case err != nil:
		return geolib.CityRecord{}, fmt.Errorf("cannot lookup city database: %w", err)
	case !ok:
		return geolib.CityRecord{}, geolib.ErrAddressNotFound
	}

	return rv, nil
}

func (h *Handle) LookupASN(ip net.IP) (geolib.ASNRecord, error) {
	rv := geolib.ASNRecord{}

	if h.asn == nil {
		return rv, ErrNoASNDatabase
	}

	record, err := h.asn.ASN(ip)
	if err != nil {
		return rv, fmt.Errorf("cannot lookup asn database: %w", err)
	}

	if record.AutonomousSystemNumber != 0 {
		number := uint32(record.AutonomousSystemNumber)
		rv.Number = &number
	}

	if record.AutonomousSystemOrganization != "" {
		organization := record.AutonomousSystemOrganization
		rv.Organization = &organization
	}

	if rv.Number == nil && rv.Organization == nil {
		return rv, geolib.ErrAddressNotFound
	}

	return rv, nil
}

func (h *Handle) HasASN() bool {
	return h.asn != nil
}

func (h *Handle) Close() error {
	var errs []error

	if err := h.city.Close(); err != nil {
		errs = append(errs, fmt.Errorf("cannot close city database: %w", err))
	}

	if h.asn != nil {
		if err := h.asn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cannot close asn database: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Open loads databases from a given filesystem. City database is
// mandatory: if it cannot be opened, an error is returned. ASN
// database is optional: an empty path or any problem with the file is
// reported to the logger and the handle works without ASN data.
func Open(fs afero.Fs, cityPath, asnPath string, logger geolib.Logger) (*Handle, error) {
	if logger == nil {
		logger = geolib.NoopLogger{}
	}

	city, err := openCity(fs, cityPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open city database %s: %w", cityPath, err)
	}

	logger.DatabaseInfo(geolib.DatabaseCity, describeMetadata(cityPath, city.Metadata))

	rv := &Handle{
		city: city,
	}

	if asnPath == "" {
		logger.DatabaseInfo(geolib.DatabaseASN, "database is not configured")

		return rv, nil
	}

	asn, err := openASN(fs, asnPath)
	if err != nil {
		logger.DatabaseError(geolib.DatabaseASN,
			fmt.Errorf("cannot open asn database %s, continue without it: %w", asnPath, err))

		return rv, nil
	}

	logger.DatabaseInfo(geolib.DatabaseASN, describeMetadata(asnPath, asn.Metadata()))

	rv.asn = asn

	return rv, nil
}

func openCity(fs afero.Fs, path string) (*maxminddb.Reader, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read a file: %w", err)
	}

	reader, err := maxminddb.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize a reader of maxminddb: %w", err)
	}

	return reader, nil
}

func openASN(fs afero.Fs, path string) (*geoip2.Reader, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read a file: %w", err)
	}

	reader, err := geoip2.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize a reader of geoip2: %w", err)
	}

	if dbType := reader.Metadata().DatabaseType; !strings.Contains(dbType, asnDatabaseTypeMarker) {
		reader.Close()

		return nil, fmt.Errorf("%w: %s", ErrUnexpectedDatabaseType, dbType)
	}

	return reader, nil
}

func describeMetadata(path string, metadata maxminddb.Metadata) string {
	buildTime := time.Unix(int64(metadata.BuildEpoch), 0).UTC()

	return fmt.Sprintf("loaded %s from %s, built at %s",
		metadata.DatabaseType,
		path,
		buildTime.Format(time.RFC3339))
}
