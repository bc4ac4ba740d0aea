package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidPayload is returned when a payload cannot be decoded into the
// requested type
var ErrInvalidPayload = errors.New("invalid event payload")

// DecodePayload returns an event payload as T. Payloads published on the
// in-process bus already hold T; payloads read back from the event log
// arrive as raw JSON or generic maps and are decoded through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch p := payload.(type) {
	case T:
		return p, nil
	case json.RawMessage:
		return out, unmarshalPayload(p, &out)
	case []byte:
		return out, unmarshalPayload(p, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
