package readdata

// TextRef locates a run of interned bytes inside a session's text arena.
// The zero value is the absent reference.
type TextRef struct {
	pg  int32 // 1-based page number, 0 means absent
	off int32
	n   int32
}

func (t TextRef) IsNil() bool {
	return t.pg == 0
}

// textArena holds all character data received from the lexer in a chain of
// fixed-capacity byte pages. A value never straddles a page boundary: when
// the current page cannot hold it whole, a fresh page is started, sized up
// for values larger than the configured page capacity.
type textArena struct {
	pages    [][]byte
	pageSize int
	last     TextRef
}

func (a *textArena) intern(raw []byte) TextRef {
	n := len(raw)
	if len(a.pages) == 0 || cap(a.currentPage())-len(a.currentPage()) < n {
		size := a.pageSize
		if n > size {
			size = n
		}
		a.pages = append(a.pages, make([]byte, 0, size))
	}
	pg := len(a.pages) - 1
	off := len(a.pages[pg])
	a.pages[pg] = append(a.pages[pg], raw...)
	a.last = TextRef{pg: int32(pg + 1), off: int32(off), n: int32(n)}
	return a.last
}

// replaceLast overwrites the most recently interned value in place. If the
// new bytes no longer fit in the value's page, or the value is not the tail
// of its page, the bytes are interned fresh instead.
func (a *textArena) replaceLast(raw []byte) TextRef {
	if a.last.IsNil() {
		return a.intern(raw)
	}
	pg := int(a.last.pg) - 1
	page := a.pages[pg]
	tail := int(a.last.off)+int(a.last.n) == len(page)
	if tail && int(a.last.off)+len(raw) <= cap(page) {
		a.pages[pg] = append(page[:a.last.off], raw...)
		a.last.n = int32(len(raw))
		return a.last
	}
	return a.intern(raw)
}

func (a *textArena) text(t TextRef) string {
	if t.IsNil() {
		return ""
	}
	page := a.pages[t.pg-1]
	return string(page[t.off : t.off+t.n])
}

func (a *textArena) currentPage() []byte {
	return a.pages[len(a.pages)-1]
}

func (a *textArena) clear() {
	a.pages = nil
	a.last = TextRef{}
}

// ref is a handle into a nodeArena: page*pageSize + slot. nilRef marks the
// end of a chain.
type ref int32

const nilRef ref = -1

// nodeArena is a page pool of nodes addressed by ref handles. Pages are
// never resized or reordered, so handles stay valid until clear.
type nodeArena[T any] struct {
	pages    [][]T
	pageSize int
}

func (a *nodeArena[T]) alloc() ref {
	if len(a.pages) == 0 || len(a.pages[len(a.pages)-1]) == a.pageSize {
		a.pages = append(a.pages, make([]T, 0, a.pageSize))
	}
	pg := len(a.pages) - 1
	var zero T
	a.pages[pg] = append(a.pages[pg], zero)
	return ref((pg * a.pageSize) + len(a.pages[pg]) - 1)
}

func (a *nodeArena[T]) at(r ref) *T {
	return &a.pages[int(r)/a.pageSize][int(r)%a.pageSize]
}

func (a *nodeArena[T]) clear() {
	a.pages = nil
}
