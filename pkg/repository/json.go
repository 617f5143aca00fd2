package repository

import "encoding/json"

// DecodeList decodes a jsonb string array column. NULL or empty input yields
// an empty, non-nil slice.
func DecodeList(raw []byte) ([]string, error) {
	list := make([]string, 0)
	if len(raw) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = make([]string, 0)
	}
	return list, nil
}

// EncodeList encodes a string slice for a jsonb array column. Nil encodes as [].
func EncodeList(list []string) []byte {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return data
}

// DecodeMap decodes a jsonb object column. NULL or empty input yields an
// empty, non-nil map.
func DecodeMap[V any](raw []byte) (map[string]V, error) {
	m := make(map[string]V)
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]V)
	}
	return m, nil
}

// EncodeMap encodes a map for a jsonb object column. Nil encodes as {}.
func EncodeMap[V any](m map[string]V) []byte {
	if m == nil {
		m = map[string]V{}
	}
	data, _ := json.Marshal(m)
	return data
}
