package geolib

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"
)

// Items are not validated as IP addresses here: invalid ones are
// reported per identifier in the response.
var handleBatchLookupRequestJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "required": [
            "ips"
        ],
        "properties": {
            "ips": {
                "type": "array",
                "items": {
                    "type": "string"
                }
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type handleBatchLookupRequest struct {
	IPs []string `json:"ips"`
}

func (h httpHandler) handleBatchLookup(w http.ResponseWriter, req *http.Request) {
	if !strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		h.sendError(w, nil, "Incorrect content type", http.StatusUnsupportedMediaType)

		return
	}

	bodyBytes, err := io.ReadAll(req.Body)

	req.Body.Close()

	if err != nil {
		h.sendError(w, err, "Cannot read request body", http.StatusBadRequest)

		return
	}

	errs, err := handleBatchLookupRequestJSONSchema.ValidateBytes(req.Context(), bodyBytes)
	if err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	if len(errs) > 0 {
		h.sendError(w, errs[0], "Invalid request body", http.StatusBadRequest)

		return
	}

	parsedRequest := &handleBatchLookupRequest{}
	if err := json.Unmarshal(bodyBytes, parsedRequest); err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	h.encodeJSON(w, h.resolver.ResolveBatch(parsedRequest.IPs))
}
