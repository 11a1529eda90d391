package content

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// shapeMismatch records a section member whose decoded kind was not the one
// the schema expects. An empty field means the section itself.
type shapeMismatch struct {
	field string
	want  string
	got   string
}

func (r *RawSection) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = looseSection(v)
	return nil
}

func (r *RawSection) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*r = looseSection(v)
	return nil
}

func looseSection(v any) RawSection {
	var r RawSection
	obj, ok := asObject(v)
	if !ok {
		r.mismatches = append(r.mismatches, shapeMismatch{want: "an object", got: kindOf(v)})
		return r
	}

	for _, key := range []string{"id", "type"} {
		value := obj[key]
		if value == nil {
			continue
		}
		str, ok := value.(string)
		if !ok {
			r.mismatches = append(r.mismatches, shapeMismatch{field: key, want: "a string", got: kindOf(value)})
			continue
		}
		if key == "id" {
			r.ID = str
		} else {
			r.Type = str
		}
	}

	if value := obj["content"]; value != nil {
		content, ok := asObject(value)
		if !ok {
			r.mismatches = append(r.mismatches, shapeMismatch{field: "content", want: "an object", got: kindOf(value)})
		} else {
			r.Content = content
		}
	}
	return r
}
