package domain

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// NullInt64 distinguishes an absent JSON field from an explicit null.
// Set is false when the field was omitted; Valid is false for explicit null.
type NullInt64 struct {
	Set   bool
	Valid bool
	Int64 int64
}

func (n *NullInt64) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, jsonNull) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.Int64); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer, nil for explicit null.
func (n NullInt64) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// NullString is NullInt64's string counterpart.
type NullString struct {
	Set    bool
	Valid  bool
	String string
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, jsonNull) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.String); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullString) Ptr() *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
