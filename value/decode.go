package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/arloliu/laxjson/errs"
	"github.com/arloliu/laxjson/format"
	"github.com/arloliu/laxjson/norm"
)

// Decode parses a JSON payload into an immutable Value tree.
//
// Object keys are normalized during construction (norm.Normalize); the raw
// spelling is discarded. The payload is walked in document order, so when two
// raw keys normalize to the same canonical form the last one decoded wins,
// deterministically.
//
// This is the only hard failure point in the package: a syntactically
// invalid payload returns an error wrapping errs.ErrInvalidJSON. Once a
// payload decodes, every subsequent lookup and coercion is total.
//
// Parameters:
//   - data: Raw JSON bytes
//
// Returns:
//   - Value: Decoded document root (Null on error)
//   - error: Error wrapping errs.ErrInvalidJSON if data is not valid JSON
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return Null, fmt.Errorf("%w: %s", errs.ErrInvalidJSON, err)
	}

	v, err := decodeToken(dec, tok)
	if err != nil {
		return Null, fmt.Errorf("%w: %s", errs.ErrInvalidJSON, err)
	}

	// Reject trailing content after the top-level value.
	if _, err := dec.Token(); err != io.EOF {
		return Null, fmt.Errorf("%w: trailing data after top-level value", errs.ErrInvalidJSON)
	}

	return v, nil
}

// DecodeString parses a JSON payload given as a string. See Decode.
func DecodeString(data string) (Value, error) {
	return Decode([]byte(data))
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}

		return Null, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return Value{kind: format.KindString, str: t}, nil
	case float64:
		return Value{kind: format.KindNumber, num: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null, err
		}

		return Value{kind: format.KindNumber, num: f}, nil
	case bool:
		return Value{kind: format.KindBool, b: t}, nil
	case nil:
		return Null, nil
	default:
		return Null, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := make(map[string]Value)
	keys := make([]string, 0, 8)

	for {
		tok, err := dec.Token()
		if err != nil {
			return Null, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return Value{kind: format.KindObject, obj: obj, keys: keys}, nil
		}

		rawKey, ok := tok.(string)
		if !ok {
			return Null, fmt.Errorf("unexpected object key token %v", tok)
		}
		key := norm.Normalize(rawKey)

		tok, err = dec.Token()
		if err != nil {
			return Null, err
		}

		child, err := decodeToken(dec, tok)
		if err != nil {
			return Null, err
		}

		// Last decoded wins; the key keeps its original position.
		if _, exists := obj[key]; !exists {
			keys = append(keys, key)
		}
		obj[key] = child
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var arr []Value

	for {
		tok, err := dec.Token()
		if err != nil {
			return Null, err
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Value{kind: format.KindArray, arr: arr}, nil
		}

		child, err := decodeToken(dec, tok)
		if err != nil {
			return Null, err
		}

		arr = append(arr, child)
	}
}

// FromToken builds a Value from a pre-decoded token tree, such as the result
// of unmarshaling into any. It accepts map[string]any, []any, string,
// json.Number, the common numeric Go types, bool, and nil.
//
// Unlike Decode, FromToken never fails: an unrecognized token shape yields
// Null for that node. Map iteration follows lexicographic key order so that
// normalized-key collisions resolve deterministically.
func FromToken(tok any) Value {
	switch t := tok.(type) {
	case map[string]any:
		rawKeys := make([]string, 0, len(t))
		for k := range t {
			rawKeys = append(rawKeys, k)
		}
		sort.Strings(rawKeys)

		obj := make(map[string]Value, len(t))
		keys := make([]string, 0, len(t))
		for _, rk := range rawKeys {
			key := norm.Normalize(rk)
			if _, exists := obj[key]; !exists {
				keys = append(keys, key)
			}
			obj[key] = FromToken(t[rk])
		}

		return Value{kind: format.KindObject, obj: obj, keys: keys}
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = FromToken(e)
		}

		return Value{kind: format.KindArray, arr: arr}
	case string:
		return Value{kind: format.KindString, str: t}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null
		}

		return Value{kind: format.KindNumber, num: f}
	case float64:
		return Value{kind: format.KindNumber, num: t}
	case float32:
		return Value{kind: format.KindNumber, num: float64(t)}
	case int:
		return Value{kind: format.KindNumber, num: float64(t)}
	case int64:
		return Value{kind: format.KindNumber, num: float64(t)}
	case uint64:
		return Value{kind: format.KindNumber, num: float64(t)}
	case bool:
		return Value{kind: format.KindBool, b: t}
	default:
		return Null
	}
}
