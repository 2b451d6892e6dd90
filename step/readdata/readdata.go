package readdata

import "strconv"

// Default page capacities, per arena. Larger pages mean fewer allocations
// at the cost of peak memory on small inputs.
const (
	DefaultCharPageSize = 50000
	DefaultRecPageSize  = 5000
	DefaultArgPageSize  = 10000
	DefaultErrPageSize  = 64
)

// Limits fixes the page capacity of each arena at construction. Zero fields
// take the defaults.
type Limits struct {
	CharPageSize int
	RecPageSize  int
	ArgPageSize  int
	ErrPageSize  int
}

// ReadData collects the parse tree of one STEP input stream. It is driven
// synchronously by a lexer/grammar pair through the protocol methods below
// and read back afterwards through Records. One instance serves one stream;
// independent streams parse in parallel with independent instances.
type ReadData struct {
	text textArena
	recs nodeArena[record]
	args nodeArena[argument]
	errs errorLog

	first ref // flat record list
	last  ref
	cur   ref
	// scopes holds the frames of open nested constructs; cursor stack for
	// sub-records and &SCOPE blocks alike.
	scopes   []scopeFrame
	pending  bool // a record has been begun and not finalized
	errArg   bool // last argument of the current record is a coalescing error placeholder
	subCount int  // synthetic idents handed out so far

	nbRec  int // records finalized, header and body
	nbHead int // records finalized before EndHeader
	nbPar  int // arguments created

	trace TraceLevel
}

func New(lim Limits) *ReadData {
	if lim.CharPageSize <= 0 {
		lim.CharPageSize = DefaultCharPageSize
	}
	if lim.RecPageSize <= 0 {
		lim.RecPageSize = DefaultRecPageSize
	}
	if lim.ArgPageSize <= 0 {
		lim.ArgPageSize = DefaultArgPageSize
	}
	if lim.ErrPageSize <= 0 {
		lim.ErrPageSize = DefaultErrPageSize
	}
	d := &ReadData{}
	d.text.pageSize = lim.CharPageSize
	d.recs.pageSize = lim.RecPageSize
	d.args.pageSize = lim.ArgPageSize
	d.errs.pageSize = lim.ErrPageSize
	d.first, d.last, d.cur = nilRef, nilRef, nilRef
	return d
}

// Intern copies raw into the text arena and returns a reference to it. The
// bytes stay valid until the text arena is cleared.
func (d *ReadData) Intern(raw []byte) TextRef {
	return d.text.intern(raw)
}

// ReplaceLast revises the most recently interned value, used when the lexer
// normalizes a lexeme after first emitting it. Falls back to a fresh intern
// when the revision no longer fits in place.
func (d *ReadData) ReplaceLast(raw []byte) TextRef {
	return d.text.replaceLast(raw)
}

// Text resolves a reference produced by Intern back to its bytes.
func (d *ReadData) Text(t TextRef) string {
	return d.text.text(t)
}

// BeginRecord starts a new record with the given identifier and makes it
// current. Beginning a record while another is still pending is a protocol
// violation: it is logged and the pending record is abandoned.
func (d *ReadData) BeginRecord(ident TextRef) {
	if d.pending {
		d.AddError("record " + d.text.text(ident) + " started before the previous one was finalized")
		d.resetCurrent()
	}
	r := d.allocRecord()
	d.recs.at(r).ident = ident
	d.cur = r
	d.pending = true
}

// SetRecordType attaches the type name to the current record.
func (d *ReadData) SetRecordType(t TextRef) {
	if !d.pending {
		d.AddError("type " + d.text.text(t) + " set without an open record")
		return
	}
	d.recs.at(d.cur).typ = t
}

// BeginList marks the opening of an argument list. The graph is not
// touched; the call exists so the driving grammar can report every bracket
// it consumes.
func (d *ReadData) BeginList() {}

// AddArg appends one argument of the given kind to the current record's
// chain, in call order. Consecutive ParamMisc pushes coalesce into a single
// placeholder whose value tracks the latest slice of the run.
func (d *ReadData) AddArg(kind ParamKind, val TextRef) {
	if !d.pending {
		d.AddError("argument added without an open record")
		return
	}
	if kind == ParamMisc {
		if d.errArg {
			rec := d.recs.at(d.cur)
			if rec.argTail != nilRef {
				d.args.at(rec.argTail).value = val
				return
			}
		}
		d.errArg = true
	} else {
		d.errArg = false
	}
	d.appendArg(kind, val)
}

// BeginSubRecord starts a synthetic record for a nested entity appearing
// inside the current record's argument list. The new record gets a generated
// "$N" identifier, is linked as sub of its spawner, and becomes current; the
// spawner is parked on the scope stack until the matching FinalizeRecord.
func (d *ReadData) BeginSubRecord() {
	if !d.pending {
		d.AddError("sub-record started without an open record")
		return
	}
	d.subCount++
	ident := d.text.intern([]byte("$" + strconv.Itoa(d.subCount)))
	r := d.allocRecord()
	d.recs.at(r).ident = ident
	d.recs.at(d.cur).sub = r
	d.scopes = append(d.scopes, scopeFrame{anchor: d.cur, subRecord: true})
	d.cur = r
	d.errArg = false
}

// FinalizeRecord appends the current record to the flat list and assigns its
// ordinal. If the record is a sub-record, its spawner becomes current again
// and receives a ParamSub argument referencing the sub-record, so the
// sub-record always precedes its spawner in the flat list.
func (d *ReadData) FinalizeRecord() {
	if !d.pending {
		d.AddError("finalize of a record that was never started")
		return
	}
	r := d.cur
	d.appendRecord(r)
	d.errArg = false
	if n := len(d.scopes); n > 0 && d.scopes[n-1].subRecord {
		frame := d.scopes[n-1]
		d.scopes = d.scopes[:n-1]
		d.cur = frame.anchor
		d.appendArg(ParamSub, d.recs.at(r).ident)
		return
	}
	d.cur = nilRef
	d.pending = false
}

// SkipRecord abandons the current, possibly partial record after an
// unrecoverable local syntax error and leaves the builder ready for the
// next BeginRecord.
func (d *ReadData) SkipRecord() {
	d.resetCurrent()
}

// OpenScope parks the current record on a new frame, for &SCOPE blocks.
// Records inside the scope begin and finalize on their own; the matching
// CloseScope restores the parked record as current.
func (d *ReadData) OpenScope() {
	d.scopes = append(d.scopes, scopeFrame{anchor: d.cur})
	d.cur = nilRef
	d.pending = false
	d.errArg = false
}

// CloseScope pops the innermost frame and restores its anchored record as
// current. Closing with no open scope is logged and ignored.
func (d *ReadData) CloseScope() {
	n := len(d.scopes)
	if n == 0 {
		d.AddError("closing of a scope that was never opened")
		return
	}
	frame := d.scopes[n-1]
	d.scopes = d.scopes[:n-1]
	d.cur = frame.anchor
	d.pending = d.cur != nilRef
}

// EndHeader marks the end of the header section: every record finalized so
// far counts as a header record.
func (d *ReadData) EndHeader() {
	d.nbHead = d.nbRec
}

// ClearMode selects how much of the session to release.
type ClearMode int

const (
	ClearGraph ClearMode = 1 // record and argument pages only
	ClearText  ClearMode = 2 // character pages only
	ClearAll   ClearMode = 3 // everything, session returns to its initial state
)

// Clear releases memory per mode. The error log survives ClearGraph and
// ClearText so diagnostics outlive the structures they describe.
func (d *ReadData) Clear(mode ClearMode) {
	if mode == ClearGraph || mode == ClearAll {
		d.recs.clear()
		d.args.clear()
		d.first, d.last, d.cur = nilRef, nilRef, nilRef
		d.pending = false
		d.errArg = false
		d.scopes = nil
	}
	if mode == ClearText || mode == ClearAll {
		d.text.clear()
	}
	if mode == ClearAll {
		d.errs.clear()
		d.nbRec, d.nbHead, d.nbPar = 0, 0, 0
		d.subCount = 0
	}
}

// NbRecords returns the number of finalized records, header and body.
func (d *ReadData) NbRecords() int { return d.nbRec }

// NbHeaderRecords returns the number of records finalized before EndHeader.
func (d *ReadData) NbHeaderRecords() int { return d.nbHead }

// NbBodyRecords returns NbRecords minus NbHeaderRecords.
func (d *ReadData) NbBodyRecords() int { return d.nbRec - d.nbHead }

// NbParams returns the number of arguments created.
func (d *ReadData) NbParams() int { return d.nbPar }

// Page counts, for tuning and diagnostics only.
func (d *ReadData) NbCharPages() int { return len(d.text.pages) }
func (d *ReadData) NbRecPages() int  { return len(d.recs.pages) }
func (d *ReadData) NbArgPages() int  { return len(d.args.pages) }

func (d *ReadData) allocRecord() ref {
	r := d.recs.alloc()
	rec := d.recs.at(r)
	rec.argHead, rec.argTail, rec.next, rec.sub = nilRef, nilRef, nilRef, nilRef
	return r
}

func (d *ReadData) appendArg(kind ParamKind, val TextRef) {
	a := d.args.alloc()
	arg := d.args.at(a)
	arg.kind = kind
	arg.value = val
	arg.next = nilRef
	rec := d.recs.at(d.cur)
	if rec.argHead == nilRef {
		rec.argHead = a
	} else {
		d.args.at(rec.argTail).next = a
	}
	rec.argTail = a
	d.nbPar++
}

func (d *ReadData) appendRecord(r ref) {
	if d.first == nilRef {
		d.first = r
	} else {
		d.recs.at(d.last).next = r
	}
	d.last = r
	d.nbRec++
	d.recs.at(r).num = int32(d.nbRec)
	if d.trace > TraceNone {
		d.printRecord(r)
	}
}

func (d *ReadData) resetCurrent() {
	for n := len(d.scopes); n > 0 && d.scopes[n-1].subRecord; n-- {
		d.scopes = d.scopes[:n-1]
	}
	d.cur = nilRef
	d.pending = false
	d.errArg = false
}
