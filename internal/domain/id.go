package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an upstream identifier. The HR API is inconsistent about
// identifier types (some endpoints send numbers, others strings, links
// may be null), so every identifier is normalized to a string at the
// decoding boundary and compared as a string from then on.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*id = ""
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("id: cannot decode %s", raw)
	}
	*id = ID(n.String())
	return nil
}
