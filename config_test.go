package main

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

const testConfigPath = "/etc/geolocator.hjson"

type ConfigTestSuite struct {
	suite.Suite

	fs afero.Fs
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
}

func (suite *ConfigTestSuite) Parse(text string) (*config, error) {
	suite.NoError(afero.WriteFile(suite.fs, testConfigPath, []byte(text), 0o644))

	return parseConfig(suite.fs, testConfigPath)
}

func (suite *ConfigTestSuite) TestDefaults() {
	conf, err := parseConfig(suite.fs, "")

	suite.NoError(err)
	suite.Equal(DefaultListen, conf.GetListen())
	suite.Equal(DefaultCityDatabase, conf.GetCityDatabase())
	suite.Equal(DefaultASNDatabase, conf.GetASNDatabase())
	suite.Empty(conf.GetStaticDirectory())
	suite.Equal(0, conf.GetWorkerPoolSize())
	suite.EqualValues(0, conf.GetCacheSize())
	suite.Equal(time.Duration(0), conf.GetCacheTTL())
	suite.Equal(DefaultShutdownTimeout, conf.GetShutdownTimeout())
	suite.False(conf.BasicAuth.Enabled())
}

func (suite *ConfigTestSuite) TestEmptyFile() {
	conf, err := suite.Parse("{}")

	suite.NoError(err)
	suite.Equal(DefaultListen, conf.GetListen())
	suite.Equal(DefaultASNDatabase, conf.GetASNDatabase())
}

func (suite *ConfigTestSuite) TestFull() {
	conf, err := suite.Parse(`{
        # comments are allowed
        listen: 127.0.0.1:9000
        city_database: "/var/lib/geo/city.mmdb"
        asn_database: "/var/lib/geo/asn.mmdb"
        static_directory: "/srv/docs"
        worker_pool_size: 32
        cache_size: 10000
        cache_ttl: 10m
        shutdown_timeout: 3s
        basic_auth: {
            user: admin
            password: secret
        }
    }`)

	suite.NoError(err)
	suite.Equal("127.0.0.1:9000", conf.GetListen())
	suite.Equal("/var/lib/geo/city.mmdb", conf.GetCityDatabase())
	suite.Equal("/var/lib/geo/asn.mmdb", conf.GetASNDatabase())
	suite.Equal("/srv/docs", conf.GetStaticDirectory())
	suite.Equal(32, conf.GetWorkerPoolSize())
	suite.EqualValues(10000, conf.GetCacheSize())
	suite.Equal(10*time.Minute, conf.GetCacheTTL())
	suite.Equal(3*time.Second, conf.GetShutdownTimeout())
	suite.True(conf.BasicAuth.Enabled())
	suite.Equal("admin", conf.BasicAuth.User)
	suite.Equal("secret", conf.BasicAuth.Password)
}

func (suite *ConfigTestSuite) TestASNDisabled() {
	conf, err := suite.Parse(`{asn_database: "-"}`)

	suite.NoError(err)
	suite.Empty(conf.GetASNDatabase())
}

func (suite *ConfigTestSuite) TestNoFile() {
	_, err := parseConfig(suite.fs, "/etc/nothing.hjson")

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestBrokenFile() {
	_, err := suite.Parse(`{listen: `)

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestIncorrectListen() {
	_, err := suite.Parse(`{listen: "localhost"}`)

	suite.Error(err)
}

func (suite *ConfigTestSuite) TestIncorrectDuration() {
	for _, v := range []string{
		`{cache_ttl: "10 parsecs"}`,
		"{\n  cache_ttl: 10\n}",
		`{shutdown_timeout: "-1s"}`,
	} {
		_, err := suite.Parse(v)

		suite.Error(err, v)
	}
}

func (suite *ConfigTestSuite) TestBasicAuthHalfConfigured() {
	_, err := suite.Parse(`{basic_auth: {user: "admin"}}`)

	suite.Error(err)
}

func TestConfig(t *testing.T) {
	suite.Run(t, &ConfigTestSuite{})
}
