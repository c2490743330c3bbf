package network

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

// CompressPayload encodes data into its compact wire form.
func CompressPayload(data any) ([]byte, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformed, "failed to encode payload")
	}
	return b, nil
}

// DiffState returns the keys of next whose encoded value differs from prev.
// Keys only present in prev are not reported.
func DiffState(prev, next map[string]any) map[string]any {
	diff := make(map[string]any)
	for k, v := range next {
		old, ok := prev[k]
		if !ok || !sameEncoding(old, v) {
			diff[k] = v
		}
	}
	return diff
}

func sameEncoding(a, b any) bool {
	ab, errA := json.Marshal(a)
	bb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
