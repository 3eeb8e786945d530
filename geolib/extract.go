package geolib

// Only english names of cities are taken into account.
const cityNameLocale = "en"

// ExtractGeo converts a raw city database record into GeoRecord. Missing
// data on any level leaves a corresponding field empty, it is never an
// error.
//
// Only the first subdivision is used. Databases list them from the most
// specific one, later entries are ignored.
func ExtractGeo(record CityRecord) GeoRecord {
	rv := GeoRecord{}

	if record.Country != nil {
		rv.Country = optionalString(record.Country.ISOCode)
	}

	if record.City != nil {
		if name, ok := record.City.Names[cityNameLocale]; ok {
			rv.City = optionalString(&name)
		}
	}

	if loc := record.Location; loc != nil {
		rv.Latitude = optionalFloat(loc.Latitude)
		rv.Longitude = optionalFloat(loc.Longitude)
		rv.TimeZone = optionalString(loc.TimeZone)
	}

	if record.Postal != nil {
		rv.PostalCode = optionalString(record.Postal.Code)
	}

	if len(record.Subdivisions) > 0 {
		rv.Subdivision = optionalString(record.Subdivisions[0].ISOCode)
	}

	return rv
}

// ExtractASN returns ASN and organization name from the record of ASN
// database. If lookup has failed, both values are empty.
func ExtractASN(record ASNRecord, err error) (*uint32, *string) {
	if err != nil {
		return nil, nil
	}

	var asn *uint32

	if record.Number != nil {
		value := *record.Number
		asn = &value
	}

	return asn, optionalString(record.Organization)
}

func optionalString(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	rv := *value

	return &rv
}

func optionalFloat(value *float64) *float64 {
	return copyValue(value)
}

func copyValue[T any](value *T) *T {
	if value == nil {
		return nil
	}

	rv := *value

	return &rv
}
