// Package readdata collects and stores the data read from a STEP
// (ISO 10303-21) physical file.
//
// # Overview
//
// A ReadData session is driven synchronously by a lexer/grammar pair. The
// lexer interns every lexeme into the session's text arena; the grammar
// interprets the interned text as structural events — a record identifier, a
// type name, an argument of some kind, a nested sub-record boundary. The
// session assembles records and their arguments into a flat, file-ordered
// list backed by page arenas, and logs malformed input as diagnostics
// instead of aborting.
//
// # Driving protocol
//
// Parsing "#123=ADVANCED_FACE('',(#124),#125,.F.)" proceeds like this:
//
//	ref := d.Intern([]byte("#123"))     // lexer saw "#123"
//	d.BeginRecord(ref)                  // grammar: new record with that ident
//	ref = d.Intern([]byte("ADVANCED_FACE"))
//	d.SetRecordType(ref)
//	d.BeginList()                       // "(" opening the argument list
//	d.AddArg(ParamText, d.Intern(nil))  // ''
//	d.BeginSubRecord()                  // "(" opening a nested list
//	d.AddArg(ParamIdent, d.Intern([]byte("#124")))
//	d.FinalizeRecord()                  // ")" closes the sub-record; #123
//	                                    // becomes current again and gains a
//	                                    // ParamSub argument referencing "$1"
//	d.AddArg(ParamIdent, d.Intern([]byte("#125")))
//	d.AddArg(ParamLogical, d.Intern([]byte(".F.")))
//	d.FinalizeRecord()                  // ";" appends #123 to the flat list
//
// The flat list now holds two records: the synthetic "$1" first, then
// "#123". A sub-record always precedes its spawner, so a reference never
// points forward during a single-pass walk.
//
// # Read-back
//
// After the parse, downstream binding walks the flat list:
//
//	for rc := d.Records(); rc.Next(); {
//	    for ac := rc.Args(); ac.Next(); {
//	        _ = ac.Kind()
//	        _ = ac.Value()
//	    }
//	}
//
// Cursors are independent; several may walk the same session at once.
//
// # Errors and memory
//
// Protocol violations and malformed input become error-log entries
// (AddError, LastError, DrainErrors); the session always stays usable.
// Clear releases memory in three grades: the record/argument graph, the
// interned text, or everything. The error log survives the first two.
//
// One session serves one input stream. Several files may be read at the
// same time provided each uses its own session.
package readdata
