// Decodes the payloads shared by several property variants.

package property

func (d decoder) selectOption(o object) (SelectOption, error) {
	var opt SelectOption
	if d.side == Response {
		var err error
		if opt.ID, err = o.str("id"); err != nil {
			return opt, err
		}
		if opt.Name, err = o.str("name"); err != nil {
			return opt, err
		}
		c, err := o.str("color")
		if err != nil {
			return opt, err
		}
		opt.Color = Color(c)
		if !opt.Color.IsBase() {
			return opt, invalidEnum(o.at("color"), baseColors, c)
		}
		return opt, nil
	}
	// Requests identify the option by id or by name.
	id, err := o.nullableStr("id")
	if err != nil {
		return opt, err
	}
	name, err := o.nullableStr("name")
	if err != nil {
		return opt, err
	}
	if id == nil && name == nil {
		return opt, required(o.at("name"), "id or name")
	}
	if id != nil {
		opt.ID = *id
	}
	if name != nil {
		opt.Name = *name
	}
	c, err := o.nullableStr("color")
	if err != nil {
		return opt, err
	}
	if c != nil {
		opt.Color = Color(*c)
		if !opt.Color.IsBase() {
			return opt, invalidEnum(o.at("color"), baseColors, *c)
		}
	}
	return opt, nil
}

func (d decoder) date(o object) (DateValue, error) {
	var dv DateValue
	var err error
	if dv.Start, err = o.dateString("start"); err != nil {
		return dv, err
	}
	if dv.End, err = o.nullableDateString("end"); err != nil {
		return dv, err
	}
	if dv.TimeZone, err = o.nullableStr("time_zone"); err != nil {
		return dv, err
	}
	if dv.TimeZone != nil && !validTimeZone(*dv.TimeZone) {
		return dv, invalidFormat(o.at("time_zone"), "IANA time zone name", *dv.TimeZone)
	}
	return dv, nil
}

// richTextArray reads the span list under key. null yields a nil slice.
func (d decoder) richTextArray(o object, key string) ([]RichText, error) {
	items, err := o.array(key, "array of rich text", true)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return nil, nil
	}
	spans := make([]RichText, 0, len(items))
	for i, item := range items {
		c, err := toObject(item, indexPath(o.at(key), i), "rich text")
		if err != nil {
			return nil, err
		}
		rt, err := d.richText(c)
		if err != nil {
			return nil, err
		}
		spans = append(spans, rt)
	}
	return spans, nil
}

func (d decoder) richText(o object) (RichText, error) {
	var rt RichText
	t, err := o.str("type")
	if err != nil {
		if d.side == Response || o.present("type") {
			return rt, err
		}
		// Request spans may omit the type when the payload key says it all.
		switch {
		case o.present("text"):
			t = string(RichTextText)
		case o.present("mention"):
			t = string(RichTextMention)
		case o.present("equation"):
			t = string(RichTextEquation)
		default:
			return rt, &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorMissing, Expected: "text, mention or equation", Got: "nothing"}
		}
	}
	rt.Type = RichTextType(t)
	switch rt.Type {
	case RichTextText:
		c, err := o.obj("text", "text content")
		if err != nil {
			return rt, err
		}
		tc := &TextContent{}
		if tc.Content, err = c.str("content"); err != nil {
			return rt, err
		}
		if lc, ok, err := c.nullableObj("link", "link"); err != nil {
			return rt, err
		} else if ok {
			u, err := lc.str("url")
			if err != nil {
				return rt, err
			}
			tc.Link = &Link{URL: u}
		}
		rt.Text = tc
	case RichTextMention:
		c, err := o.obj("mention", "mention")
		if err != nil {
			return rt, err
		}
		if rt.Mention, err = d.mention(c); err != nil {
			return rt, err
		}
	case RichTextEquation:
		c, err := o.obj("equation", "equation")
		if err != nil {
			return rt, err
		}
		expr, err := c.str("expression")
		if err != nil {
			return rt, err
		}
		rt.Equation = &Equation{Expression: expr}
	default:
		return rt, &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorUnknown, Expected: "text, mention or equation", Got: t}
	}

	if d.side == Response {
		ac, err := o.obj("annotations", "annotations")
		if err != nil {
			return rt, err
		}
		if rt.Annotations, err = d.annotations(ac); err != nil {
			return rt, err
		}
		if rt.PlainText, err = o.str("plain_text"); err != nil {
			return rt, err
		}
		if _, ok := o.m["href"]; !ok {
			return rt, required(o.at("href"), "string or null")
		}
		if rt.Href, err = o.nullableStr("href"); err != nil {
			return rt, err
		}
		return rt, nil
	}
	if ac, ok, err := o.nullableObj("annotations", "annotations"); err != nil {
		return rt, err
	} else if ok {
		if rt.Annotations, err = d.annotations(ac); err != nil {
			return rt, err
		}
	}
	return rt, nil
}

// annotations requires every field on responses; requests may set a subset.
func (d decoder) annotations(o object) (*Annotations, error) {
	a := &Annotations{}
	read := o.boolean
	if d.side == Request {
		read = o.optionalBool
	}
	var err error
	if a.Bold, err = read("bold"); err != nil {
		return nil, err
	}
	if a.Italic, err = read("italic"); err != nil {
		return nil, err
	}
	if a.Strikethrough, err = read("strikethrough"); err != nil {
		return nil, err
	}
	if a.Underline, err = read("underline"); err != nil {
		return nil, err
	}
	if a.Code, err = read("code"); err != nil {
		return nil, err
	}
	if d.side == Request && !o.present("color") {
		return a, nil
	}
	c, err := o.str("color")
	if err != nil {
		return nil, err
	}
	a.Color = Color(c)
	if !a.Color.Valid() {
		return nil, invalidEnum(o.at("color"), colors, c)
	}
	return a, nil
}

var mentionTypes = []string{
	string(MentionUser), string(MentionDate), string(MentionPage), string(MentionDatabase),
	string(MentionLinkPreview), string(MentionTemplateMention),
}

func (d decoder) mention(o object) (*Mention, error) {
	m := &Mention{}
	t, err := o.nullableStr("type")
	if err != nil {
		return nil, err
	}
	switch {
	case t != nil:
		m.Type = MentionType(*t)
	case d.side == Request:
		for _, k := range mentionTypes {
			if o.present(k) {
				m.Type = MentionType(k)
				break
			}
		}
	}
	if m.Type == "" {
		return nil, &ValidationError{Path: o.at("type"), Code: CodeDiscriminatorMissing, Expected: "mention type", Got: "nothing"}
	}
	if !contains(mentionTypes, string(m.Type)) {
		return nil, invalidEnum(o.at("type"), mentionTypes, string(m.Type))
	}
	key := string(m.Type)
	c, err := o.obj(key, key+" mention")
	if err != nil {
		return nil, err
	}
	switch m.Type {
	case MentionUser:
		u, err := d.user(c)
		if err != nil {
			return nil, err
		}
		m.User = &u
	case MentionDate:
		dv, err := d.date(c)
		if err != nil {
			return nil, err
		}
		m.Date = &dv
	case MentionPage:
		id, err := c.str("id")
		if err != nil {
			return nil, err
		}
		m.Page = &PageRef{ID: id}
	case MentionDatabase:
		id, err := c.str("id")
		if err != nil {
			return nil, err
		}
		m.Database = &DatabaseRef{ID: id}
	case MentionLinkPreview:
		u, err := c.str("url")
		if err != nil {
			return nil, err
		}
		m.LinkPreview = &Link{URL: u}
	case MentionTemplateMention:
		tm := &TemplateMention{}
		if tm.Type, err = c.literal("type", "template_mention_date", "template_mention_user"); err != nil {
			return nil, err
		}
		if tm.Type == "template_mention_date" {
			tm.Date, err = c.literal(tm.Type, "today", "now")
		} else {
			tm.User, err = c.literal(tm.Type, "me")
		}
		if err != nil {
			return nil, err
		}
		m.TemplateMention = tm
	}
	return m, nil
}

// user decodes a partial, person or bot user. The "type" field discriminates;
// its absence means a partial user.
func (d decoder) user(o object) (User, error) {
	var u User
	if o.present("object") {
		if _, err := o.literal("object", "user"); err != nil {
			return u, err
		}
	}
	var err error
	if u.ID, err = o.str("id"); err != nil {
		return u, err
	}
	t, err := o.nullableStr("type")
	if err != nil {
		return u, err
	}
	if t == nil {
		return u, nil
	}
	if !contains([]string{string(UserPerson), string(UserBot)}, *t) {
		return u, invalidEnum(o.at("type"), []string{string(UserPerson), string(UserBot)}, *t)
	}
	u.Type = UserType(*t)
	if u.Name, err = o.nullableStr("name"); err != nil {
		return u, err
	}
	if u.AvatarURL, err = o.nullableStr("avatar_url"); err != nil {
		return u, err
	}
	switch u.Type {
	case UserPerson:
		pc, ok, err := o.nullableObj("person", "person details")
		if err != nil {
			return u, err
		}
		u.Person = &PersonDetails{}
		if ok {
			email, err := pc.nullableStr("email")
			if err != nil {
				return u, err
			}
			if email != nil {
				u.Person.Email = *email
			}
		}
	case UserBot:
		bc, ok, err := o.nullableObj("bot", "bot details")
		if err != nil {
			return u, err
		}
		u.Bot = &BotDetails{}
		if ok {
			if u.Bot, err = d.bot(bc); err != nil {
				return u, err
			}
		}
	}
	return u, nil
}

func (d decoder) bot(o object) (*BotDetails, error) {
	b := &BotDetails{}
	var err error
	if b.WorkspaceName, err = o.nullableStr("workspace_name"); err != nil {
		return nil, err
	}
	oc, ok, err := o.nullableObj("owner", "bot owner")
	if err != nil || !ok {
		return b, err
	}
	if b.Owner.Type, err = oc.literal("type", "user", "workspace"); err != nil {
		return nil, err
	}
	if b.Owner.Type == "workspace" {
		if b.Owner.Workspace, err = oc.boolean("workspace"); err != nil {
			return nil, err
		}
		return b, nil
	}
	uc, err := oc.obj("user", "user")
	if err != nil {
		return nil, err
	}
	u, err := d.user(uc)
	if err != nil {
		return nil, err
	}
	b.Owner.User = &u
	return b, nil
}

func file(o object) (FileValue, error) {
	var f FileValue
	var err error
	if f.Name, err = o.str("name"); err != nil {
		return f, err
	}
	if f.Type, err = o.literal("type", "file", "external"); err != nil {
		return f, err
	}
	c, err := o.obj(f.Type, f.Type+" object")
	if err != nil {
		return f, err
	}
	u, err := c.str("url")
	if err != nil {
		return f, err
	}
	if f.Type == "external" {
		f.External = &Link{URL: u}
		return f, nil
	}
	exp, err := c.dateString("expiry_time")
	if err != nil {
		return f, err
	}
	f.File = &HostedFile{URL: u, ExpiryTime: exp}
	return f, nil
}
