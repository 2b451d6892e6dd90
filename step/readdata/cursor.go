package readdata

// RecordCursor walks the flat record list front to back. Cursors are
// independent: any number may be live over the same session, as long as the
// session is not mutated underneath them.
type RecordCursor struct {
	d       *ReadData
	cur     ref
	started bool
}

// Records returns a fresh cursor positioned before the first record.
func (d *ReadData) Records() *RecordCursor {
	return &RecordCursor{d: d, cur: nilRef}
}

func (c *RecordCursor) Next() bool {
	if !c.started {
		c.cur = c.d.first
		c.started = true
	} else if c.cur != nilRef {
		c.cur = c.d.recs.at(c.cur).next
	}
	return c.cur != nilRef
}

func (c *RecordCursor) Ident() string {
	return c.d.text.text(c.d.recs.at(c.cur).ident)
}

func (c *RecordCursor) Type() string {
	return c.d.text.text(c.d.recs.at(c.cur).typ)
}

// HasType reports whether the record was finalized with a type. A record
// without one is legal here; downstream binding decides what to do with it.
func (c *RecordCursor) HasType() bool {
	return !c.d.recs.at(c.cur).typ.IsNil()
}

// Num returns the record's 1-based ordinal in the flat list.
func (c *RecordCursor) Num() int {
	return int(c.d.recs.at(c.cur).num)
}

func (c *RecordCursor) NbArgs() int {
	n := 0
	for a := c.d.recs.at(c.cur).argHead; a != nilRef; a = c.d.args.at(a).next {
		n++
	}
	return n
}

// SubIdent returns the identifier of the synthetic sub-record this record
// spawned, or "" if it spawned none.
func (c *RecordCursor) SubIdent() string {
	sub := c.d.recs.at(c.cur).sub
	if sub == nilRef {
		return ""
	}
	return c.d.text.text(c.d.recs.at(sub).ident)
}

// Args returns a fresh cursor over the record's argument chain, in the
// order the arguments were pushed.
func (c *RecordCursor) Args() *ArgCursor {
	return &ArgCursor{d: c.d, head: c.d.recs.at(c.cur).argHead, cur: nilRef}
}

type ArgCursor struct {
	d       *ReadData
	head    ref
	cur     ref
	started bool
}

func (c *ArgCursor) Next() bool {
	if !c.started {
		c.cur = c.head
		c.started = true
	} else if c.cur != nilRef {
		c.cur = c.d.args.at(c.cur).next
	}
	return c.cur != nilRef
}

func (c *ArgCursor) Kind() ParamKind {
	return c.d.args.at(c.cur).kind
}

func (c *ArgCursor) Value() string {
	return c.d.text.text(c.d.args.at(c.cur).value)
}
