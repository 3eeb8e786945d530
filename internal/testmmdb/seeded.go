package testmmdb

import "github.com/maxmind/mmdbwriter/mmdbtype"

// Addresses of the seeded databases.
const (
	// Every field is seeded, ASN record is present.
	IPLondon = "81.2.69.142"

	// Only country and city are seeded, no ASN record.
	IPMountainView = "8.8.8.8"

	// City has no english name, no location. ASN record has no
	// organization.
	IPParis = "2.125.160.218"

	// Country and postal code are empty strings.
	IPEmptyStrings = "1.1.1.1"

	// IPv6 network with country only, ASN record is present.
	IPv6Google = "2001:4860:4860::8888"

	// Public address which is not in databases.
	IPMissing = "9.9.9.9"
)

// Seeded values.
const (
	LondonCountry      = "GB"
	LondonCity         = "London"
	LondonLatitude     = 51.5142
	LondonLongitude    = -0.0931
	LondonPostalCode   = "EC1A"
	LondonTimeZone     = "Europe/London"
	LondonSubdivision  = "ENG"
	LondonASN          = 20712
	LondonOrganization = "Andrews & Arnold Ltd"

	MountainViewCountry = "US"
	MountainViewCity    = "Mountain View"

	ParisCountry = "FR"
	ParisASN     = 3215

	GoogleCountry      = "US"
	GoogleASN          = 15169
	GoogleOrganization = "GOOGLE"

	EmptyStringsASN = 13335
)

func CityNetworks() []Network {
	return []Network{
		{
			CIDR: "81.2.69.0/24",
			Record: mmdbtype.Map{
				"country": mmdbtype.Map{
					"iso_code": mmdbtype.String(LondonCountry),
				},
				"city": mmdbtype.Map{
					"names": mmdbtype.Map{
						"en": mmdbtype.String(LondonCity),
						"ru": mmdbtype.String("Лондон"),
					},
				},
				"location": mmdbtype.Map{
					"latitude":  mmdbtype.Float64(LondonLatitude),
					"longitude": mmdbtype.Float64(LondonLongitude),
					"time_zone": mmdbtype.String(LondonTimeZone),
				},
				"postal": mmdbtype.Map{
					"code": mmdbtype.String(LondonPostalCode),
				},
				"subdivisions": mmdbtype.Slice{
					mmdbtype.Map{"iso_code": mmdbtype.String(LondonSubdivision)},
					mmdbtype.Map{"iso_code": mmdbtype.String("WBK")},
				},
			},
		},
		{
			CIDR: "8.8.8.0/24",
			Record: mmdbtype.Map{
				"country": mmdbtype.Map{
					"iso_code": mmdbtype.String(MountainViewCountry),
				},
				"city": mmdbtype.Map{
					"names": mmdbtype.Map{
						"en": mmdbtype.String(MountainViewCity),
					},
				},
			},
		},
		{
			CIDR: "2.125.160.216/29",
			Record: mmdbtype.Map{
				"country": mmdbtype.Map{
					"iso_code": mmdbtype.String(ParisCountry),
				},
				"city": mmdbtype.Map{
					"names": mmdbtype.Map{
						"de": mmdbtype.String("Paris"),
						"fr": mmdbtype.String("Paris"),
					},
				},
				"subdivisions": mmdbtype.Slice{
					mmdbtype.Map{
						"names": mmdbtype.Map{
							"en": mmdbtype.String("Ile-de-France"),
						},
					},
				},
			},
		},
		{
			CIDR: "1.1.1.0/24",
			Record: mmdbtype.Map{
				"country": mmdbtype.Map{
					"iso_code": mmdbtype.String(""),
				},
				"postal": mmdbtype.Map{
					"code": mmdbtype.String(""),
				},
			},
		},
		{
			CIDR: "2001:4860::/32",
			Record: mmdbtype.Map{
				"country": mmdbtype.Map{
					"iso_code": mmdbtype.String(GoogleCountry),
				},
			},
		},
	}
}

func ASNNetworks() []Network {
	return []Network{
		{
			CIDR: "81.2.69.0/24",
			Record: mmdbtype.Map{
				"autonomous_system_number":       mmdbtype.Uint32(LondonASN),
				"autonomous_system_organization": mmdbtype.String(LondonOrganization),
			},
		},
		{
			CIDR: "2.125.160.216/29",
			Record: mmdbtype.Map{
				"autonomous_system_number": mmdbtype.Uint32(ParisASN),
			},
		},
		{
			CIDR: "1.1.1.0/24",
			Record: mmdbtype.Map{
				"autonomous_system_number": mmdbtype.Uint32(EmptyStringsASN),
			},
		},
		{
			CIDR: "2001:4860::/32",
			Record: mmdbtype.Map{
				"autonomous_system_number":       mmdbtype.Uint32(GoogleASN),
				"autonomous_system_organization": mmdbtype.String(GoogleOrganization),
			},
		},
	}
}

// CityDatabase returns a serialized seeded city database.
func CityDatabase() []byte {
	data, err := Build(CityDatabaseType, CityNetworks()...)
	if err != nil {
		panic(err)
	}

	return data
}

// ASNDatabase returns a serialized seeded ASN database.
func ASNDatabase() []byte {
	data, err := Build(ASNDatabaseType, ASNNetworks()...)
	if err != nil {
		panic(err)
	}

	return data
}
