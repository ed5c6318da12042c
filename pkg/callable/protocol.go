package callable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodySize bounds the request body read by Decode.
const maxBodySize = 1 << 20

type requestEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type resultEnvelope struct {
	Result any `json:"result"`
}

type errorBody struct {
	Details any    `json:"details,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Decode reads a callable request and unmarshals its "data" field into v.
// Protocol violations are reported as ErrBadRequest with the reason in
// the chain; the reason is not written to the wire.
func Decode(r *http.Request, v any) error {
	if r.Method != http.MethodPost {
		return fmt.Errorf("%w: method %s", ErrBadRequest, r.Method)
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: content type %q", ErrBadRequest, r.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrBadRequest, err)
	}

	var env requestEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if env.Data == nil {
		return fmt.Errorf("%w: missing data field", ErrBadRequest)
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: data: %v", ErrBadRequest, err)
	}
	return nil
}

// WriteResult writes a successful response wrapping v in a "result" field.
func WriteResult(w http.ResponseWriter, v any) error {
	return writeJSON(w, http.StatusOK, resultEnvelope{Result: v})
}

// WriteError writes err as an error envelope.
// Errors that are not *Error are written as an opaque internal error.
func WriteError(w http.ResponseWriter, err error) error {
	if err == nil {
		return errors.New("callable: WriteError called with nil error")
	}
	ce := AsError(err)
	return writeJSON(w, ce.Code.HTTPStatus(), errorEnvelope{Error: errorBody{
		Status:  ce.Code.Status(),
		Message: ce.Message,
		Details: ce.Details,
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
