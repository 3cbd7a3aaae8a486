package event

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// DecodePayload returns the payload of e as T. Events published on the
// MemoryBus already carry T or *T; a generic map (a replayed or forwarded
// event) is converted through its JSON form. A missing payload is a data
// integrity error.
func DecodePayload[T any](e Event) (T, error) {
	var out T
	switch p := e.Payload.(type) {
	case nil:
		return out, fmt.Errorf("%w: "+ErrMsgMissingPayload, domain.ErrDataIntegrity, e.Type)
	case T:
		return p, nil
	case *T:
		if p == nil {
			return out, fmt.Errorf("%w: "+ErrMsgMissingPayload, domain.ErrDataIntegrity, e.Type)
		}
		return *p, nil
	}

	data, err := json.Marshal(e.Payload)
	if err != nil {
		return out, fmt.Errorf("%w: "+ErrMsgDecodePayload, domain.ErrDataIntegrity, e.Type, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: "+ErrMsgDecodePayload, domain.ErrDataIntegrity, e.Type, err)
	}
	return out, nil
}
