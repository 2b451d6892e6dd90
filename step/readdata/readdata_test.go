package readdata

import "testing"

func addRecord(d *ReadData, ident, typ string, args ...string) {
	d.BeginRecord(d.Intern([]byte(ident)))
	d.SetRecordType(d.Intern([]byte(typ)))
	d.BeginList()
	for _, a := range args {
		d.AddArg(ParamIdent, d.Intern([]byte(a)))
	}
	d.FinalizeRecord()
}

func TestFinalizeCounts(t *testing.T) {
	d := New(Limits{})
	addRecord(d, "", "FILE_DESCRIPTION")
	addRecord(d, "", "FILE_NAME")
	d.EndHeader()
	addRecord(d, "#1", "CARTESIAN_POINT")
	addRecord(d, "#2", "DIRECTION")
	addRecord(d, "#3", "VECTOR")

	if got := d.NbRecords(); got != 5 {
		t.Errorf("NbRecords: got %d, want 5", got)
	}
	if got := d.NbHeaderRecords(); got != 2 {
		t.Errorf("NbHeaderRecords: got %d, want 2", got)
	}
	if got := d.NbBodyRecords(); got != 3 {
		t.Errorf("NbBodyRecords: got %d, want 3", got)
	}

	n := 0
	for rc := d.Records(); rc.Next(); {
		n++
		if got := rc.Num(); got != n {
			t.Errorf("record %d: got ordinal %d", n, got)
		}
	}
	if n != 5 {
		t.Errorf("flat list: got %d records, want 5", n)
	}
}

func TestArgumentOrder(t *testing.T) {
	d := New(Limits{})
	want := []string{"#10", "#11", "#12", "#13"}
	addRecord(d, "#1", "POLYLINE", want...)

	rc := d.Records()
	if !rc.Next() {
		t.Fatal("no record in flat list")
	}
	var got []string
	for ac := rc.Args(); ac.Next(); {
		got = append(got, ac.Value())
	}
	if len(got) != len(want) {
		t.Fatalf("got %d args, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if got := d.NbParams(); got != 4 {
		t.Errorf("NbParams: got %d, want 4", got)
	}
}

// The worked example from the format: #123=ADVANCED_FACE with a nested
// single-identifier list must produce the synthetic record first, then the
// outer record with a Sub marker in the nested list's position.
func TestSubRecordScenario(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#123")))
	d.SetRecordType(d.Intern([]byte("ADVANCED_FACE")))
	d.BeginList()
	d.BeginSubRecord()
	d.AddArg(ParamIdent, d.Intern([]byte("#124")))
	d.FinalizeRecord()
	d.AddArg(ParamIdent, d.Intern([]byte("#125")))
	d.AddArg(ParamIdent, d.Intern([]byte("#125")))
	d.FinalizeRecord()

	if got := d.NbRecords(); got != 2 {
		t.Fatalf("NbRecords: got %d, want 2", got)
	}

	rc := d.Records()
	rc.Next()
	if got := rc.Ident(); got != "$1" {
		t.Errorf("sub ident: got %q, want %q", got, "$1")
	}
	if rc.HasType() {
		t.Errorf("sub record should have no type, got %q", rc.Type())
	}
	if got := rc.NbArgs(); got != 1 {
		t.Errorf("sub args: got %d, want 1", got)
	}
	ac := rc.Args()
	ac.Next()
	if ac.Kind() != ParamIdent || ac.Value() != "#124" {
		t.Errorf("sub arg: got %v %q, want Ident %q", ac.Kind(), ac.Value(), "#124")
	}

	if got := rc.SubIdent(); got != "" {
		t.Errorf("sub record reports its own sub %q", got)
	}

	rc.Next()
	if got := rc.Ident(); got != "#123" {
		t.Errorf("outer ident: got %q, want %q", got, "#123")
	}
	if got := rc.SubIdent(); got != "$1" {
		t.Errorf("outer SubIdent: got %q, want %q", got, "$1")
	}
	if got := rc.Type(); got != "ADVANCED_FACE" {
		t.Errorf("outer type: got %q, want %q", got, "ADVANCED_FACE")
	}
	wantKinds := []ParamKind{ParamSub, ParamIdent, ParamIdent}
	wantValues := []string{"$1", "#125", "#125"}
	i := 0
	for ac := rc.Args(); ac.Next(); i++ {
		if ac.Kind() != wantKinds[i] || ac.Value() != wantValues[i] {
			t.Errorf("outer arg %d: got %v %q, want %v %q", i, ac.Kind(), ac.Value(), wantKinds[i], wantValues[i])
		}
	}
	if i != 3 {
		t.Errorf("outer args: got %d, want 3", i)
	}
}

func TestSubRecordsPrecedeSpawnersAtDepth(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#1")))
	d.SetRecordType(d.Intern([]byte("OUTER")))
	d.BeginList()
	d.BeginSubRecord() // $1
	d.BeginSubRecord() // $2, nested inside $1
	d.AddArg(ParamInteger, d.Intern([]byte("7")))
	d.FinalizeRecord() // $2
	d.FinalizeRecord() // $1
	d.FinalizeRecord() // #1

	var idents []string
	for rc := d.Records(); rc.Next(); {
		idents = append(idents, rc.Ident())
	}
	want := []string{"$2", "$1", "#1"}
	if len(idents) != len(want) {
		t.Fatalf("got %d records, want %d", len(idents), len(want))
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("record %d: got %q, want %q", i, idents[i], want[i])
		}
	}
}

func TestErrorArgCoalescing(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#1")))
	d.SetRecordType(d.Intern([]byte("BROKEN")))
	d.BeginList()
	d.AddArg(ParamMisc, d.Intern([]byte("@")))
	d.AddArg(ParamMisc, d.Intern([]byte("@~")))
	d.AddArg(ParamMisc, d.Intern([]byte("@~^")))
	d.AddArg(ParamInteger, d.Intern([]byte("42")))
	d.AddArg(ParamMisc, d.Intern([]byte("%")))
	d.FinalizeRecord()

	rc := d.Records()
	rc.Next()
	var kinds []ParamKind
	var values []string
	for ac := rc.Args(); ac.Next(); {
		kinds = append(kinds, ac.Kind())
		values = append(values, ac.Value())
	}
	wantKinds := []ParamKind{ParamMisc, ParamInteger, ParamMisc}
	wantValues := []string{"@~^", "42", "%"}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("got %d args, want %d", len(kinds), len(wantKinds))
	}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] || values[i] != wantValues[i] {
			t.Errorf("arg %d: got %v %q, want %v %q", i, kinds[i], values[i], wantKinds[i], wantValues[i])
		}
	}
}

func TestCloseScopeWithoutOpen(t *testing.T) {
	d := New(Limits{})
	d.CloseScope()

	c := newCountingSink(t, d)
	if c.n != 1 {
		t.Errorf("got %d diagnostics, want 1", c.n)
	}

	// builder must still be usable at top level
	addRecord(d, "#1", "CARTESIAN_POINT")
	if got := d.NbRecords(); got != 1 {
		t.Errorf("NbRecords after recovery: got %d, want 1", got)
	}
}

func TestOpenCloseScope(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#10")))
	d.OpenScope()
	addRecord(d, "#11", "CARTESIAN_POINT")
	addRecord(d, "#12", "DIRECTION")
	d.CloseScope()
	d.SetRecordType(d.Intern([]byte("AXIS2_PLACEMENT_3D")))
	d.BeginList()
	d.AddArg(ParamIdent, d.Intern([]byte("#11")))
	d.FinalizeRecord()

	var idents []string
	for rc := d.Records(); rc.Next(); {
		idents = append(idents, rc.Ident())
	}
	want := []string{"#11", "#12", "#10"}
	if len(idents) != 3 {
		t.Fatalf("got %d records, want 3", len(idents))
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("record %d: got %q, want %q", i, idents[i], want[i])
		}
	}
	if d.LastError() != "" {
		t.Errorf("unexpected diagnostic: %q", d.LastError())
	}
}

func TestBeginRecordWhilePending(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#1")))
	d.SetRecordType(d.Intern([]byte("HALF_BUILT")))
	d.BeginRecord(d.Intern([]byte("#2")))
	d.SetRecordType(d.Intern([]byte("CARTESIAN_POINT")))
	d.FinalizeRecord()

	if d.LastError() == "" {
		t.Error("expected a structural diagnostic")
	}
	if got := d.NbRecords(); got != 1 {
		t.Errorf("NbRecords: got %d, want 1", got)
	}
	rc := d.Records()
	rc.Next()
	if got := rc.Ident(); got != "#2" {
		t.Errorf("got %q, want %q", got, "#2")
	}
}

func TestFinalizeWithoutBegin(t *testing.T) {
	d := New(Limits{})
	d.FinalizeRecord()
	if d.LastError() == "" {
		t.Error("expected a structural diagnostic")
	}
	if got := d.NbRecords(); got != 0 {
		t.Errorf("NbRecords: got %d, want 0", got)
	}
}

func TestFinalizeWithoutType(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#1")))
	d.FinalizeRecord()

	if d.LastError() != "" {
		t.Errorf("absent type must not be a diagnostic, got %q", d.LastError())
	}
	rc := d.Records()
	rc.Next()
	if rc.HasType() {
		t.Errorf("got type %q, want absent", rc.Type())
	}
}

func TestSkipRecord(t *testing.T) {
	d := New(Limits{})
	d.BeginRecord(d.Intern([]byte("#1")))
	d.SetRecordType(d.Intern([]byte("GARBAGE")))
	d.BeginSubRecord()
	d.AddArg(ParamMisc, d.Intern([]byte("!!")))
	d.SkipRecord()

	addRecord(d, "#2", "CARTESIAN_POINT")
	if got := d.NbRecords(); got != 1 {
		t.Errorf("NbRecords: got %d, want 1", got)
	}
	rc := d.Records()
	rc.Next()
	if got := rc.Ident(); got != "#2" {
		t.Errorf("got %q, want %q", got, "#2")
	}
}

func TestClearAllAndReuse(t *testing.T) {
	d := New(Limits{})
	addRecord(d, "#1", "CARTESIAN_POINT", "#2")
	d.EndHeader()
	d.AddError("leftover")
	d.Clear(ClearAll)

	if got := d.NbRecords(); got != 0 {
		t.Errorf("NbRecords after clear: got %d, want 0", got)
	}
	if got := d.NbParams(); got != 0 {
		t.Errorf("NbParams after clear: got %d, want 0", got)
	}
	if got := d.LastError(); got != "" {
		t.Errorf("error log after clear: got %q, want empty", got)
	}
	if rc := d.Records(); rc.Next() {
		t.Error("flat list not empty after clear")
	}

	addRecord(d, "#1", "DIRECTION")
	if got := d.NbRecords(); got != 1 {
		t.Errorf("NbRecords after reuse: got %d, want 1", got)
	}
	rc := d.Records()
	rc.Next()
	if got := rc.Num(); got != 1 {
		t.Errorf("ordinal after reuse: got %d, want 1", got)
	}
}

func TestErrorLogSurvivesPartialClears(t *testing.T) {
	d := New(Limits{})
	addRecord(d, "#1", "CARTESIAN_POINT")
	d.AddError("something went wrong")

	d.Clear(ClearGraph)
	if got := d.LastError(); got != "something went wrong" {
		t.Errorf("after ClearGraph: got %q", got)
	}
	d.Clear(ClearText)
	if got := d.LastError(); got != "something went wrong" {
		t.Errorf("after ClearText: got %q", got)
	}
}

type countingSink struct {
	n int
}

func newCountingSink(t *testing.T, d *ReadData) *countingSink {
	t.Helper()
	c := &countingSink{}
	d.errs.each(func(string) { c.n++ })
	return c
}
