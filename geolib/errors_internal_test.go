package geolib

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HTTPErrorTestSuite struct {
	suite.Suite

	e *httpError
}

func (suite *HTTPErrorTestSuite) SetupTest() {
	suite.e = &httpError{}
}

func (suite *HTTPErrorTestSuite) TestNil() {
	var err *httpError

	suite.Empty(err.Message())
	suite.Empty(err.Err())
	suite.Equal(http.StatusInternalServerError, err.StatusCode())
	suite.Nil(errors.Unwrap(err))
	suite.Empty(err.Error())

	data, e := json.Marshal(err)

	suite.NoError(e)
	suite.JSONEq("null", string(data))
}

func (suite *HTTPErrorTestSuite) TestStatusCode() {
	suite.Equal(http.StatusInternalServerError, suite.e.StatusCode())

	suite.e.statusCode = http.StatusServiceUnavailable

	suite.Equal(http.StatusServiceUnavailable, suite.e.StatusCode())
}

func (suite *HTTPErrorTestSuite) TestUnwrap() {
	suite.Nil(errors.Unwrap(suite.e))

	suite.e.err = ErrAddressNotFound

	suite.True(errors.Is(suite.e, ErrAddressNotFound))
	suite.Equal(ErrAddressNotFound.Error(), suite.e.Err())
}

func (suite *HTTPErrorTestSuite) TestError() {
	suite.EqualError(suite.e, "")

	suite.e.message = "Cannot resolve IP address"

	suite.EqualError(suite.e, "Cannot resolve IP address")

	suite.e.err = ErrAddressNotFound

	suite.EqualError(suite.e, "Cannot resolve IP address: address not found in database")

	suite.e.message = ""

	suite.EqualError(suite.e, "address not found in database")
}

func (suite *HTTPErrorTestSuite) TestJSON() {
	data, err := json.Marshal(suite.e)

	suite.NoError(err)
	suite.JSONEq(`{"error": {"message": "", "context": ""}}`, string(data))

	suite.e.message = ErrInvalidIP.Error()
	data, err = json.Marshal(suite.e)

	suite.NoError(err)
	suite.JSONEq(`{"error": {"message": "Invalid IP format", "context": ""}}`, string(data))

	suite.e.err = io.EOF
	data, err = json.Marshal(suite.e)

	suite.NoError(err)
	suite.JSONEq(`{"error": {"message": "Invalid IP format", "context": "EOF"}}`, string(data))
}

func (suite *HTTPErrorTestSuite) TestSendError() {
	resp := httptest.NewRecorder()

	httpHandler{}.sendError(resp, ErrResolverShutdown, "Service is shutting down",
		http.StatusServiceUnavailable)

	suite.Equal(http.StatusServiceUnavailable, resp.Code)
	suite.Equal("application/json", resp.Header().Get("Content-Type"))
	suite.JSONEq(`{
        "error": {
            "message": "Service is shutting down",
            "context": "resolver was shutdown"
        }
    }`, resp.Body.String())
}

func TestHTTPError(t *testing.T) {
	suite.Run(t, &HTTPErrorTestSuite{})
}
