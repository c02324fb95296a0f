package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type orderedObject = orderedmap.OrderedMap[string, any]

// MarshalOrdered encodes tree as JSON, emitting the keys of every object in
// the order they appear in source. Keys source does not have follow in
// lexical order, so a nil source gives the same bytes as json.Marshal.
//
// Normalize works on Go maps and loses key order; encoding the result
// against the schema it came from restores the declaration order of
// properties.
func MarshalOrdered(tree any, source json.RawMessage) (json.RawMessage, error) {
	var order any
	if len(source) > 0 {
		var err error
		if order, err = decodeOrdered(source); err != nil {
			return nil, fmt.Errorf("schema: decode source: %w", err)
		}
	}
	data, err := json.Marshal(withOrder(tree, order))
	if err != nil {
		return nil, fmt.Errorf("schema: encode: %w", err)
	}
	return data, nil
}

func decodeOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeToken(dec)
}

func decodeToken(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		obj := orderedmap.New[string, any]()
		for dec.More() {
			key, err := dec.Token()
			if err != nil {
				return nil, err
			}
			val, err := decodeToken(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key.(string), val)
		}
		_, err := dec.Token()
		return obj, err
	case json.Delim('['):
		var list []any
		for dec.More() {
			val, err := decodeToken(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		_, err := dec.Token()
		return list, err
	default:
		return tok, nil
	}
}

// withOrder converts every map of v to an ordered object keyed like order.
func withOrder(v, order any) any {
	switch node := v.(type) {
	case map[string]any:
		src, _ := order.(*orderedObject)
		out := orderedmap.New[string, any]()
		if src != nil {
			for pair := src.Oldest(); pair != nil; pair = pair.Next() {
				if val, ok := node[pair.Key]; ok {
					out.Set(pair.Key, withOrder(val, pair.Value))
				}
			}
		}
		rest := make([]string, 0, len(node))
		for key := range node {
			if _, seen := out.Get(key); !seen {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			out.Set(key, withOrder(node[key], nil))
		}
		return out
	case []any:
		src, _ := order.([]any)
		out := make([]any, len(node))
		for i, item := range node {
			var o any
			if i < len(src) {
				o = src[i]
			}
			out[i] = withOrder(item, o)
		}
		return out
	default:
		return v
	}
}
