package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goodfoods/samvaad/internal/domain"
)

// unmarshalToolInput unmarshals the tool arguments from a JSON string into
// the target struct, ensuring that only a single JSON object is present and that there are no unknown fields.
func unmarshalToolInput(arguments string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}

// flexInt accepts a JSON number or a numeric string. Models send both.
type flexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n != math.Trunc(n) {
		return fmt.Errorf("%q is not an integer", s)
	}
	*f = flexInt(n)
	return nil
}

// intPtr converts an optional flexInt argument.
func intPtr(f *flexInt) *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// isBusinessErr reports whether the error is a domain outcome rather than an infrastructure failure.
func isBusinessErr(err error) bool {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		conflictErr   *domain.ConflictErr
	)
	return errors.As(err, &validationErr) || errors.As(err, &notFoundErr) || errors.As(err, &conflictErr)
}

func bounded(minimum, maximum int) (*int, *int) {
	return &minimum, &maximum
}
