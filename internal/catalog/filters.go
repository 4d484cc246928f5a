package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

var errInvalidFilters = errors.New("Invalid JSON parameters")

// decodeFilters expands a JSON object into query values.
// Blank input and falsy JSON values (null, [], "", 0, false) mean no
// filters; any other non-object value is rejected. Scalars keep their JSON
// literal text, null becomes an empty value, arrays repeat the key and nested objects
// are passed as compact JSON.
func decodeFilters(raw string, q map[string][]string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		return errInvalidFilters
	}

	d := jx.DecodeStr(raw)
	if d.Next() != jx.Object {
		if isFalsy(d) {
			return nil
		}
		return errInvalidFilters
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		k := string(key)
		if d.Next() != jx.Array {
			v, err := filterValue(d)
			if err != nil {
				return err
			}
			q[k] = []string{v}
			return nil
		}
		vals := []string{}
		if err := d.Arr(func(d *jx.Decoder) error {
			v, err := filterValue(d)
			if err != nil {
				return err
			}
			vals = append(vals, v)
			return nil
		}); err != nil {
			return err
		}
		q[k] = vals
		return nil
	})
	if err != nil {
		return errors.Wrap(errInvalidFilters, err.Error())
	}
	return nil
}

// isFalsy reports whether the next value is null, false, zero, "" or [].
func isFalsy(d *jx.Decoder) bool {
	switch d.Next() {
	case jx.Null:
		return d.Null() == nil
	case jx.Bool:
		b, err := d.Bool()
		return err == nil && !b
	case jx.String:
		s, err := d.Str()
		return err == nil && s == ""
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return false
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		return err == nil && f == 0
	case jx.Array:
		elems := 0
		err := d.Arr(func(d *jx.Decoder) error {
			elems++
			return d.Skip()
		})
		return err == nil && elems == 0
	default:
		return false
	}
}

func filterValue(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return "", err
		}
		if b {
			return "true", nil
		}
		return "false", nil
	case jx.Null:
		return "", d.Null()
	default:
		raw, err := d.Raw()
		if err != nil {
			return "", err
		}
		return compactJSON(raw.String()), nil
	}
}

// compactJSON strips insignificant whitespace from valid JSON.
func compactJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
