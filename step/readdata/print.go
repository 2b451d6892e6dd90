package readdata

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("stepfile.readdata")

// TraceLevel controls the diagnostic dump of the graph as it is built.
type TraceLevel int

const (
	TraceNone    TraceLevel = iota
	TraceRecords            // one line per finalized record
	TraceArgs               // records and their arguments
)

func (d *ReadData) SetTraceLevel(level TraceLevel) {
	d.trace = level
}

func (d *ReadData) TraceLevel() TraceLevel {
	return d.trace
}

func (d *ReadData) printRecord(r ref) {
	rec := d.recs.at(r)
	nb := 0
	for a := rec.argHead; a != nilRef; a = d.args.at(a).next {
		nb++
	}
	log.Infof("record %d: ident=%q type=%q args=%d", rec.num, d.text.text(rec.ident), d.text.text(rec.typ), nb)
	if d.trace < TraceArgs {
		return
	}
	i := 0
	for a := rec.argHead; a != nilRef; a = d.args.at(a).next {
		arg := d.args.at(a)
		log.Infof("  arg %d: %s %q", i, arg.kind, d.text.text(arg.value))
		i++
	}
}
