package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-viper/mapstructure/v2"
)

// Key is a top-level field name of a successful response.
type Key string

// Object is a successful response. Only the top level is keyed by Key;
// nested values keep their decoded JSON form.
type Object map[Key]any

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	v, ok := o[Key(key)]
	return v, ok
}

// String returns the string stored under key, or "".
func (o Object) String(key string) string {
	s, _ := o[Key(key)].(string)
	return s
}

// Map returns a copy of o keyed by plain strings.
func (o Object) Map() map[string]any {
	m := make(map[string]any, len(o))
	for k, v := range o {
		m[string(k)] = v
	}
	return m
}

// Decode copies o into out, matching fields by their json tag.
func (o Object) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(o.Map()); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	return nil
}

// DecodeBody parses a JSON body. A parse failure is returned as a
// *DecodeError; it never yields an empty value.
func DecodeBody(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}
	return v, nil
}

// Normalize maps the outcome of one exchange to exactly one of: an Object
// (status 200 with a JSON object body), an *APIError (any other status with
// a JSON body), a *NetworkError (transport failure), or a *DecodeError.
func Normalize(resp *RawResponse, transportErr error) (Object, error) {
	if transportErr != nil {
		var netErr *NetworkError
		if errors.As(transportErr, &netErr) {
			return nil, transportErr
		}
		return nil, &NetworkError{Err: transportErr}
	}
	if resp == nil {
		return nil, &NetworkError{Err: errors.New("no response")}
	}

	decoded, err := DecodeBody(resp.Body)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.StatusCode = resp.StatusCode
		}
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: decoded}
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Raw: resp.Body, Err: ErrNotObject}
	}

	obj := make(Object, len(fields))
	for k, v := range fields {
		obj[Key(k)] = v
	}
	return obj, nil
}
