package geolib

// GeoRecord is a normalized result of IP lookup. Each field is nil if
// databases have no data for it.
type GeoRecord struct {
	Country      *string  `json:"country"`
	City         *string  `json:"city"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PostalCode   *string  `json:"postal_code"`
	TimeZone     *string  `json:"time_zone"`
	Subdivision  *string  `json:"subdivision"`
	ASN          *uint32  `json:"asn"`
	Organization *string  `json:"organization"`
}

// Copy returns a deep copy of the record: no pointers are shared with
// the original one.
func (g GeoRecord) Copy() GeoRecord {
	return GeoRecord{
		Country:      copyValue(g.Country),
		City:         copyValue(g.City),
		Latitude:     copyValue(g.Latitude),
		Longitude:    copyValue(g.Longitude),
		PostalCode:   copyValue(g.PostalCode),
		TimeZone:     copyValue(g.TimeZone),
		Subdivision:  copyValue(g.Subdivision),
		ASN:          copyValue(g.ASN),
		Organization: copyValue(g.Organization),
	}
}

// BatchResult partitions identifiers of a batch into successfully
// resolved ones and failed ones. Each identifier is present in exactly
// one of these maps.
type BatchResult struct {
	Results map[string]GeoRecord `json:"results"`
	Errors  map[string]string    `json:"errors"`
}

// CityRecord is a raw record of the city database. All nested entities
// are pointers so absence of the data can be detected on any level.
type CityRecord struct {
	City         *CityRecordCity         `maxminddb:"city"`
	Country      *CityRecordCountry      `maxminddb:"country"`
	Location     *CityRecordLocation     `maxminddb:"location"`
	Postal       *CityRecordPostal       `maxminddb:"postal"`
	Subdivisions []CityRecordSubdivision `maxminddb:"subdivisions"`
}

type CityRecordCity struct {
	Names map[string]string `maxminddb:"names"`
}

type CityRecordCountry struct {
	ISOCode *string `maxminddb:"iso_code"`
}

type CityRecordLocation struct {
	Latitude  *float64 `maxminddb:"latitude"`
	Longitude *float64 `maxminddb:"longitude"`
	TimeZone  *string  `maxminddb:"time_zone"`
}

type CityRecordPostal struct {
	Code *string `maxminddb:"code"`
}

type CityRecordSubdivision struct {
	ISOCode *string `maxminddb:"iso_code"`
}

// ASNRecord is a raw record of the ASN database.
type ASNRecord struct {
	Number       *uint32
	Organization *string
}
