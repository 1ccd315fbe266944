package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// JoinOne holds the single optional row of a to-one join.
//
// Depending on the join path Postgres JSON aggregation hands back a nested
// relation as null, a single object or an array (json_agg). UnmarshalJSON
// coerces every shape to at most one value so code past the fetch boundary
// only ever sees Value/Valid.
type JoinOne[T any] struct {
	Value T
	Valid bool
}

// Some wraps v as a present join value.
func Some[T any](v T) JoinOne[T] {
	return JoinOne[T]{Value: v, Valid: true}
}

// Get returns the value and whether it is present.
func (j JoinOne[T]) Get() (T, bool) {
	return j.Value, j.Valid
}

func (j *JoinOne[T]) UnmarshalJSON(data []byte) error {
	var zero T
	j.Value, j.Valid = zero, false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("join array: %w", err)
		}
		for _, item := range items {
			if bytes.Equal(bytes.TrimSpace(item), jsonNull) {
				continue
			}
			// json_agg over a LEFT JOIN yields [null] when nothing matched;
			// the first concrete row wins.
			if err := json.Unmarshal(item, &j.Value); err != nil {
				return fmt.Errorf("join element: %w", err)
			}
			j.Valid = true
			return nil
		}
		return nil
	}

	if err := json.Unmarshal(data, &j.Value); err != nil {
		return fmt.Errorf("join object: %w", err)
	}
	j.Valid = true
	return nil
}

func (j JoinOne[T]) MarshalJSON() ([]byte, error) {
	if !j.Valid {
		return jsonNull, nil
	}
	return json.Marshal(j.Value)
}

// FlexInt accepts both native JSON numbers and quoted numbers ("23", "45.0").
// Match sheets submitted from HTML forms send every value as a string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*f = 0
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		// "45+2" stoppage time notation counts as the base minute
		if i := strings.IndexByte(s, '+'); i > 0 {
			s = s[:i]
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex int %q: %w", s, err)
	}
	*f = FlexInt(int(n))
	return nil
}
