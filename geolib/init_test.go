package geolib_test

import (
	"net"

	"github.com/9seconds/geolocator/geolib"
	"github.com/stretchr/testify/mock"
)

type DatabaseMock struct {
	mock.Mock
}

func (m *DatabaseMock) LookupCity(ip net.IP) (geolib.CityRecord, error) {
	args := m.Called(ip)

	return args.Get(0).(geolib.CityRecord), args.Error(1)
}

func (m *DatabaseMock) LookupASN(ip net.IP) (geolib.ASNRecord, error) {
	args := m.Called(ip)

	return args.Get(0).(geolib.ASNRecord), args.Error(1)
}

func (m *DatabaseMock) HasASN() bool {
	return m.Called().Bool(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip net.IP, name string, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) DatabaseInfo(name, msg string) {
	m.Called(name, msg)
}

func (m *LoggerMock) DatabaseError(name string, err error) {
	m.Called(name, err)
}

func stringPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func uint32Ptr(value uint32) *uint32 {
	return &value
}
