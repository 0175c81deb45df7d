package property

import (
	"sort"
)

// Properties maps property names to their decoded response values, as found
// on a page object.
type Properties map[string]PropertyValue

// UnmarshalJSON decodes every property with the response decoder. Error
// paths start with the property name.
func (p *Properties) UnmarshalJSON(data []byte) error {
	v, err := parse(data)
	if err != nil {
		return err
	}
	props, err := DecodeProperties(v)
	if err != nil {
		return err
	}
	*p = props
	return nil
}

// DecodeProperties decodes an untyped properties object. Properties are
// visited in name order so the reported error is deterministic.
func DecodeProperties(v any) (Properties, error) {
	o, err := toObject(v, "", "properties object")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(o.m))
	for name := range o.m {
		names = append(names, name)
	}
	sort.Strings(names)
	d := decoder{side: Response}
	out := make(Properties, len(names))
	for _, name := range names {
		pv, err := d.value(o.m[name], o.at(name), true)
		if err != nil {
			return nil, err
		}
		out[name] = pv
	}
	return out, nil
}

// Find returns the first property of type t, by name order.
func (p Properties) Find(t Type) (string, PropertyValue, bool) {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p[name].PropertyType() == t {
			return name, p[name], true
		}
	}
	return "", nil, false
}
