package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const maxBodyBytes = 1 << 20

const internalErrorMessage = "Internal server error"

func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		WriteFail(w, http.StatusInternalServerError, api.StatusError, internalErrorMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.Response{Status: api.StatusSuccess, Data: data})
}

func WriteFail(w http.ResponseWriter, statusCode int, status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(api.Response{Status: status, Message: message})
}

// WriteErrorAndStatusCode writes known errors as client failures and
// everything else as a logged server fault.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		WriteFail(w, e.StatusCode, api.StatusFail, e.Message)
		return
	}
	logger.Log.Error("unhandled error", "error", err)
	WriteFail(w, http.StatusInternalServerError, api.StatusError, internalErrorMessage)
}

// DecodePayload reads a JSON object body. An empty body yields an empty payload
// so entity validation can report the missing properties.
// Anything but whitespace after the object is rejected.
func DecodePayload(r io.Reader) (domain.Payload, error) {
	var payload domain.Payload
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	err := dec.Decode(&payload)
	if errors.Is(err, io.EOF) {
		return domain.Payload{}, nil
	}
	if err == nil {
		if trailing := dec.Decode(&struct{}{}); !errors.Is(trailing, io.EOF) {
			err = fmt.Errorf("unexpected data after json object: %v", trailing)
		}
	}
	if err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return nil, internal_errors.BadRequest("Body is invalid json")
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
