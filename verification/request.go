package verification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Request is the payload of a verification mail call.
type Request struct {
	Email string `json:"email"`
	Code  Code   `json:"code"`
}

// Result is returned for every accepted send.
type Result struct {
	Success bool `json:"success"`
}

// Code is a verification code as the caller sent it.
// A JSON string is kept as is, so "000123" stays "000123". A JSON number is
// printed in its shortest decimal form, so 123 becomes "123", 1.50 becomes
// "1.5" and 1e3 becomes "1000". Null decodes to "".
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("verification: code must be a string or a number: %w", err)
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("verification: code out of range: %w", err)
	}
	*c = Code(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (c Code) String() string {
	return string(c)
}
