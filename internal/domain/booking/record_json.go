package booking

import (
	"bytes"
	"encoding/json"
	"maps"
	"reflect"
	"strings"
)

// recordFields has Record's layout without its JSON methods.
type recordFields Record

// declaredKeys are Record's json names, lower-cased because encoding/json
// matches object keys case-insensitively.
var declaredKeys = func() map[string]struct{} {
	keys := map[string]struct{}{}
	t := reflect.TypeOf(Record{})
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[strings.ToLower(name)] = struct{}{}
	}
	return keys
}()

func (r *Record) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields recordFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	maps.DeleteFunc(all, func(k string, _ json.RawMessage) bool {
		_, declared := declaredKeys[strings.ToLower(k)]
		return declared
	})

	*r = Record(fields)
	if len(all) > 0 {
		r.Extra = all
	}
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(recordFields(r))
	if err != nil || len(r.Extra) == 0 {
		return data, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return json.Marshal(out)
}
