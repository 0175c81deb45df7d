// Decodes property items, the paginated form of a single page property.

package property

// Item is one property_item object. Paginated properties (title, rich_text,
// relation, people, rollup) return one Item per element; other properties
// return a single Item holding the whole payload.
type Item struct {
	ID   string
	Type Type
	// Value is the untyped payload stored under the Type key.
	Value any
}

// ItemPage is one response of the property item endpoint.
type ItemPage struct {
	// Item is set when the property is not paginated.
	Item *Item
	// Results, NextCursor and List are set for paginated properties.
	Results    []Item
	NextCursor *string
	List       *Item
}

// DecodeItemPage validates a property item response.
func DecodeItemPage(data []byte) (*ItemPage, error) {
	v, err := parse(data)
	if err != nil {
		return nil, err
	}
	o, err := toObject(v, "", "property item response")
	if err != nil {
		return nil, err
	}
	kind, err := o.literal("object", "property_item", "list")
	if err != nil {
		return nil, err
	}
	if kind == "property_item" {
		it, err := item(o)
		if err != nil {
			return nil, err
		}
		return &ItemPage{Item: &it}, nil
	}
	page := &ItemPage{}
	if page.NextCursor, err = o.nullableStr("next_cursor"); err != nil {
		return nil, err
	}
	results, err := o.array("results", "array of property items", false)
	if err != nil {
		return nil, err
	}
	page.Results = make([]Item, 0, len(results))
	for i, r := range results {
		c, err := toObject(r, indexPath(o.at("results"), i), "property item")
		if err != nil {
			return nil, err
		}
		it, err := item(c)
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, it)
	}
	lc, err := o.obj("property_item", "property item summary")
	if err != nil {
		return nil, err
	}
	list, err := item(lc)
	if err != nil {
		return nil, err
	}
	page.List = &list
	return page, nil
}

func item(o object) (Item, error) {
	var it Item
	var err error
	if it.ID, err = o.str("id"); err != nil {
		return it, err
	}
	t, err := o.str("type")
	if err != nil {
		return it, err
	}
	it.Type = Type(t)
	if !it.Type.Valid() {
		return it, &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorUnknown, Expected: "property type tag", Got: t}
	}
	it.Value = o.m[t]
	return it, nil
}

// ItemList accumulates the pages of one paginated property.
type ItemList struct {
	Type  Type
	ID    string
	Items []Item
	// summary is the property_item object of list responses; for rollups it
	// carries the aggregated value.
	summary *Item
}

// NewItemList starts a list from the first page.
func NewItemList(first *ItemPage) *ItemList {
	if first.Item != nil {
		return &ItemList{Type: first.Item.Type, ID: first.Item.ID, Items: []Item{*first.Item}}
	}
	l := &ItemList{summary: first.List}
	if first.List != nil {
		l.Type = first.List.Type
		l.ID = first.List.ID
	}
	l.Append(first)
	return l
}

// Append adds the results of a subsequent page.
func (l *ItemList) Append(p *ItemPage) {
	l.Items = append(l.Items, p.Results...)
}

// Value reassembles the full property value and validates it as a response
// value.
func (l *ItemList) Value() (PropertyValue, error) {
	raw := map[string]any{"type": string(l.Type), "id": l.ID}
	switch {
	case l.summary == nil && len(l.Items) == 1:
		raw[string(l.Type)] = l.Items[0].Value
	case l.Type == TypeRollup:
		if l.summary == nil {
			return nil, required("/property_item", "rollup summary")
		}
		raw[string(l.Type)] = l.summary.Value
	default:
		values := make([]any, 0, len(l.Items))
		for _, it := range l.Items {
			values = append(values, it.Value)
		}
		raw[string(l.Type)] = values
	}
	return Decode(Response, raw)
}
