/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package cbuffer

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func testSource() *defs.MemSource {
	src := defs.NewMemSource()
	for _, name := range []string{"X", "Y", "Z"} {
		src.AddRecord(defs.NewRecord(name, defs.RecordKind_Table).
			AddField("F1", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("F2", ptypes.Kind_String, 0, defs.DefaultSource{}).
			AddField("F3", ptypes.Kind_Integer, 0, defs.DefaultSource{}))
	}
	src.AddRecord(defs.NewRecord("EFF", defs.RecordKind_Table).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
		AddField("DESCR", ptypes.Kind_String, 0, defs.DefaultSource{}).
		AddSubRecord("SBR").
		AddField("EFFDT", ptypes.Kind_Date, defs.FieldFlag_Key, defs.ConstantDefault("%date")))
	src.AddRecord(defs.NewRecord("SBR", defs.RecordKind_SubRecord).
		AddField("CITY", ptypes.Kind_String, 0, defs.DefaultSource{}).
		AddField("ZIP", ptypes.Kind_String, 0, defs.DefaultSource{}))
	return src
}

func field(rec, fld string, flags ...defs.TokenFlag) *defs.PageToken {
	return &defs.PageToken{RecName: rec, FieldName: fld, Flags: defs.FlagsOf(flags...)}
}

func scroll(rec string, occurs int) *defs.PageToken {
	return &defs.PageToken{PrimaryRecName: rec, OccursLevel: occurs, Flags: defs.FlagsOf(defs.TokenFlag_ScrollStart)}
}

func page() *defs.PageToken { return &defs.PageToken{Flags: defs.FlagsOf(defs.TokenFlag_Page)} }

func endOfPage() *defs.PageToken { return &defs.PageToken{Flags: defs.FlagsOf(defs.TokenFlag_EndOfPage)} }

func drain(n IStreamable) []IStreamable {
	res := []IStreamable{}
	for s := n.Next(); s != nil; s = n.Next() {
		res = append(res, s)
	}
	return res
}

func TestChildScrollLevel(t *testing.T) {
	require := require.New(t)

	cb := New(testSource())
	root := cb.Root()
	require.Zero(root.Level())
	require.Nil(root.Parent())

	y := root.ChildScrollOrCreate("Y")
	require.Equal(1, y.Level())
	require.Same(root, y.Parent())
	require.Same(y, root.ChildScrollOrCreate("Y"))

	z := y.ChildScrollOrCreate("Z")
	require.Equal(y.Level()+1, z.Level())

	x := root.ChildScrollOrCreate("X")
	require.Equal([]*ScrollBuffer{y, x}, root.ChildScrolls())
	c, ok := root.ChildScroll("X")
	require.True(ok)
	require.Same(x, c)
}

func TestRecordBuffer(t *testing.T) {
	t.Run("keyed EFFDT is added first", func(t *testing.T) {
		require := require.New(t)
		sb := New(testSource()).Root().ChildScrollOrCreate("EFF")
		rb, err := sb.RecordBufferOrCreate("EFF")
		require.NoError(err)
		require.True(rb.IsPrimary())
		require.Equal(1, rb.ScrollLevel())
		require.Len(rb.FieldBuffers(), 1)
		require.Equal("EFFDT", rb.FieldBuffers()[0].FieldName())
		require.Nil(rb.FieldBuffers()[0].PageToken())

		tok := field("EFF", "EFFDT")
		require.NoError(rb.AddPageField(field("EFF", "DESCR")))
		require.NoError(rb.AddPageField(tok))
		require.Len(rb.FieldBuffers(), 2, "repeated fields are ignored")
		require.Same(tok, rb.FieldBuffers()[0].PageToken())
	})

	t.Run("record without EFFDT starts empty", func(t *testing.T) {
		require := require.New(t)
		rb, err := New(testSource()).Root().RecordBufferOrCreate("X")
		require.NoError(err)
		require.Empty(rb.FieldBuffers())
		require.False(rb.IsPrimary())
	})

	t.Run("unknown field", func(t *testing.T) {
		require := require.New(t)
		rb, _ := New(testSource()).Root().RecordBufferOrCreate("X")
		require.ErrorIs(rb.AddPageField(field("X", "NONE")), ptypes.ErrNotFoundError)
	})

	t.Run("fields are streamed in field number order", func(t *testing.T) {
		require := require.New(t)
		rb, _ := New(testSource()).Root().RecordBufferOrCreate("X")
		require.NoError(rb.AddPageField(field("X", "F3")))
		require.NoError(rb.AddPageField(field("X", "F1")))
		names := []string{}
		for _, n := range drain(rb)[1:] {
			names = append(names, n.(*RecordFieldBuffer).FieldName())
		}
		require.Equal([]string{"F1", "F3"}, names)
	})

	t.Run("expansion", func(t *testing.T) {
		require := require.New(t)
		rb, _ := New(testSource()).Root().RecordBufferOrCreate("EFF")
		tok := field("EFF", "CITY")
		require.NoError(rb.AddPageField(tok))

		rb.ExpandEntireRecord()
		require.True(rb.IsExpanded())
		names := func() []string {
			res := []string{}
			for _, fb := range rb.FieldBuffers() {
				res = append(res, fb.RecName()+"."+fb.FieldName())
			}
			return res
		}
		once := names()
		require.Equal([]string{"EFF.EMPLID", "EFF.DESCR", "SBR.CITY", "SBR.ZIP", "EFF.EFFDT"}, once)

		rb.ExpandEntireRecord()
		require.Equal(once, names())

		city, ok := rb.FieldBuffer("CITY")
		require.True(ok)
		require.Same(tok, city.PageToken(), "page token link survives expansion")

		drain(rb)
		require.Equal(once, names(), "expanded buffer is never re-sorted")
	})
}

func TestRecordFieldBufferLookup(t *testing.T) {
	require := require.New(t)

	cb := New(testSource())
	_, err := cb.Root().RecordFieldBuffer("X", "F1")
	require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)

	require.NoError(cb.Root().AddPageField(field("X", "F1")))
	fb, err := cb.Root().RecordFieldBuffer("X", "F1")
	require.NoError(err)
	require.Equal("X.F1", fb.String())

	_, err = cb.Root().RecordFieldBuffer("X", "F2")
	require.ErrorIs(err, ptypes.ErrNotFoundError)
}

func TestRelated(t *testing.T) {
	require := require.New(t)

	p := defs.NewPage("P").
		AddToken(&defs.PageToken{ID: 1, RecName: "X", FieldName: "F1", Flags: defs.FlagsOf(defs.TokenFlag_DisplayControl)}).
		AddToken(&defs.PageToken{ID: 2, RecName: "Y", FieldName: "F2", Flags: defs.FlagsOf(defs.TokenFlag_RelatedDisplay), DispControlID: 1})

	cb := New(testSource())
	require.NoError(cb.Root().AddPageField(p.Tokens()[1]))
	child := cb.Root().ChildScrollOrCreate("X")
	require.NoError(child.AddPageField(p.Tokens()[0]))

	dc, err := child.RecordFieldBuffer("X", "F1")
	require.NoError(err)

	rel, err := dc.Related("Y", "F2")
	require.NoError(err)
	require.Equal("Y.F2", rel.String())

	_, err = dc.Related("Y", "F3")
	require.ErrorIs(err, ptypes.ErrNotFoundError)
}

func TestStreamingLaw(t *testing.T) {
	require := require.New(t)

	f := fuzz.New().NilChance(0).NumElements(1, 50)
	recs := []string{"X", "Y", "Z", "EFF"}
	fields := []string{"F1", "F2", "F3"}

	for i := 0; i < 100; i++ {
		var ops []uint16
		f.Fuzz(&ops)

		cb := New(testSource())
		scrolls := []*ScrollBuffer{cb.Root()}
		for _, op := range ops {
			sb := scrolls[int(op)%len(scrolls)]
			rec := recs[int(op>>4)%len(recs)]
			switch {
			case op&0x100 != 0:
				c := sb.ChildScrollOrCreate(rec)
				require.Equal(sb.Level()+1, c.Level())
				scrolls = append(scrolls, c)
			case rec == "EFF":
				rb, err := sb.RecordBufferOrCreate(rec)
				require.NoError(err)
				if op&0x200 != 0 {
					rb.ExpandEntireRecord()
				}
			default:
				require.NoError(sb.AddPageField(field(rec, fields[int(op>>8)%len(fields)])))
			}
		}

		first := drain(cb.Root())
		require.Nil(cb.Root().Next(), "exhausted stream stays exhausted")
		cb.Root().Reset()
		second := drain(cb.Root())
		require.Equal(first, second)
		require.Same(cb.Root(), first[0])
	}
}

func TestStreamOrder(t *testing.T) {
	require := require.New(t)

	cb := New(testSource())
	root := cb.Root()
	require.NoError(root.AddPageField(field("X", "F2")))
	y := root.ChildScrollOrCreate("Y")
	require.NoError(y.AddPageField(field("Y", "F1")))
	require.NoError(root.AddPageField(field("Z", "F1")))

	got := []string{}
	for _, n := range drain(root) {
		got = append(got, fmt.Sprint(n))
	}
	require.Equal([]string{
		"scroll buffer «» level 0",
		"record buffer «X»",
		"X.F2",
		"record buffer «Z»",
		"Z.F1",
		"scroll buffer «Y» level 1",
		"record buffer «Y»",
		"Y.F1",
	}, got)
}

func TestStreamOrderAfterLateAdd(t *testing.T) {
	require := require.New(t)

	cb := New(testSource())
	rb, err := cb.Root().RecordBufferOrCreate("X")
	require.NoError(err)
	require.NoError(rb.AddPageField(field("X", "F3")))

	names := func() []string {
		res := []string{}
		for _, n := range drain(rb) {
			res = append(res, fmt.Sprint(n))
		}
		return res
	}
	require.Equal([]string{"record buffer «X»", "X.F3"}, names())

	require.NoError(rb.AddPageField(field("X", "F1")))
	rb.Reset()
	require.Equal([]string{"record buffer «X»", "X.F1", "X.F3"}, names())
}

func TestAssemble(t *testing.T) {
	t.Run("nested scrolls", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{
			page(), field("X", "F1"),
			scroll("Y", 1), field("Y", "F2"),
			scroll("Z", 1), field("Z", "F3"),
			endOfPage(),
		}})
		require.NoError(err)

		_, ok := cb.Root().RecordBuffer("X")
		require.True(ok)
		y, ok := cb.Scroll("Y")
		require.True(ok)
		require.Equal(1, y.Level())
		z, ok := cb.Scroll("Y", "Z")
		require.True(ok)
		require.Equal(2, z.Level())
		rb, ok := z.RecordBuffer("Z")
		require.True(ok)
		require.True(rb.IsPrimary())
		require.Len(cb.Root().ChildScrolls(), 1)
	})

	t.Run("unended scroll is closed by sibling scroll", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{
			page(), field("X", "F1"),
			scroll("Y", 1), scroll("Z", 1), field("Z", "F2"),
			endOfPage(),
		}})
		require.NoError(err)

		require.Len(cb.Root().ChildScrolls(), 2)
		for _, sb := range cb.Root().ChildScrolls() {
			require.Equal(1, sb.Level())
			require.Empty(sb.ChildScrolls())
		}
		z, _ := cb.Scroll("Z")
		_, ok := z.RecordBuffer("Z")
		require.True(ok)
	})

	t.Run("level decrement on field", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{
			page(),
			scroll("Y", 1), field("Y", "F1"),
			field("X", "F2", defs.TokenFlag_ScrollLvlDecrement),
			endOfPage(),
		}})
		require.NoError(err)
		_, err = cb.Root().RecordFieldBuffer("X", "F2")
		require.NoError(err, "field with decrement flag is registered at parent level")
	})

	t.Run("subpage inside scroll inherits scroll", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{
			page(),
			scroll("Y", 1),
			page(), field("Y", "F2"), field("Z", "F1"), endOfPage(),
			field("Y", "F3"),
			endOfPage(),
		}})
		require.NoError(err)
		y, _ := cb.Scroll("Y")
		_, err = y.RecordFieldBuffer("Z", "F1")
		require.NoError(err)
		_, err = y.RecordFieldBuffer("Y", "F3")
		require.NoError(err)
	})

	t.Run("stream without leading page token", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		require.NoError(cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{field("X", "F1"), endOfPage()}}))
	})

	t.Run("unterminated page", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{page(), scroll("Y", 1), field("Y", "F1")}})
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
		require.ErrorContains(err, "marker stack size is 3")
	})

	t.Run("underflow", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{endOfPage(), endOfPage()}})
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
	})

	t.Run("level jump", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(PageStream{Page: "P", Tokens: []*defs.PageToken{page(), scroll("Y", 2), endOfPage()}})
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
	})

	t.Run("pages share buffer tree", func(t *testing.T) {
		require := require.New(t)
		cb := New(testSource())
		err := cb.Assemble(
			PageStream{Page: "P1", Tokens: []*defs.PageToken{page(), scroll("Y", 1), field("Y", "F1"), endOfPage()}},
			PageStream{Page: "P2", Tokens: []*defs.PageToken{page(), scroll("Y", 1), field("Y", "F2"), endOfPage()}},
		)
		require.NoError(err)
		require.Len(cb.Root().ChildScrolls(), 1)
		y, _ := cb.Scroll("Y")
		rb, _ := y.RecordBuffer("Y")
		require.Len(rb.FieldBuffers(), 2)
	})
}

func TestAssembleTokenStream(t *testing.T) {
	require := require.New(t)

	src := testSource().
		AddPage(defs.NewPage("MAIN").AddField("X", "F1").AddScroll("Y", 1).AddField("Y", "F1").AddSubPage("SUB")).
		AddPage(defs.NewPage("SUB").AddField("Y", "F2").AddScroll("Z", 1).AddField("Z", "F3"))

	tokens, err := defs.TokenStream(src, "MAIN")
	require.NoError(err)

	cb := New(src)
	require.NoError(cb.Assemble(PageStream{Page: "MAIN", Tokens: tokens}))
	require.Equal(`Scroll 0 «»
  Record X
    X.F1
      Scroll 1 «Y»
        Record Y (primary)
          Y.F1
          Y.F2
            Scroll 2 «Z»
              Record Z (primary)
                Z.F3
`, cb.Dump())
}

func TestOrderingBuffer(t *testing.T) {
	batches := [][]string{}
	ob := NewOrderingBuffer(func(recNames []string) error {
		batches = append(batches, recNames)
		return nil
	})

	// MAIN: A.F, SEC1, B.F, SEC2 ; SEC1: C.F, SEC3, A.F ; SEC3: D.F ; SEC2: E.F
	sec1 := &defs.PageToken{SubPageName: "SEC1", Flags: defs.FlagsOf(defs.TokenFlag_SecPage)}
	sec2 := &defs.PageToken{SubPageName: "SEC2", Flags: defs.FlagsOf(defs.TokenFlag_SecPage)}
	sec3 := &defs.PageToken{SubPageName: "SEC3", Flags: defs.FlagsOf(defs.TokenFlag_SecPage)}

	ob.QueueFieldToken(field("A", "F"))
	ob.QueueSecPageMarker(sec1)
	ob.QueueFieldToken(field("B", "F"))
	ob.QueueSecPageMarker(sec2)

	require.NoError(t, ob.NotifyStartOfExpansion(sec1))
	require.NoError(t, ob.FlushUpTo(sec1))
	ob.QueueFieldToken(field("C", "F"))
	ob.QueueSecPageMarker(sec3)
	ob.QueueFieldToken(field("A", "F"))
	require.NoError(t, ob.NotifyStartOfExpansion(sec3))
	require.NoError(t, ob.FlushUpTo(sec3))
	ob.QueueFieldToken(field("D", "F"))
	require.NoError(t, ob.NotifyEndOfExpansion(sec3))
	require.NoError(t, ob.NotifyEndOfExpansion(sec1))

	require.NoError(t, ob.NotifyStartOfExpansion(sec2))
	require.NoError(t, ob.FlushUpTo(sec2))
	ob.QueueFieldToken(field("E", "F"))
	require.NoError(t, ob.NotifyEndOfExpansion(sec2))
	require.NoError(t, ob.Flush())

	require.Equal(t, [][]string{{"A"}, {"C"}, {"D", "B"}, {"E"}}, batches)
	require.Equal(t, []string{"A", "C", "D", "B", "E"}, ob.Listed())

	t.Run("errors", func(t *testing.T) {
		require := require.New(t)
		require.ErrorIs(ob.NotifyStartOfExpansion(sec1), ptypes.ErrStructuralIntegrityError)
		require.ErrorIs(ob.FlushUpTo(sec1), ptypes.ErrStructuralIntegrityError)
		require.ErrorIs(ob.NotifyEndOfExpansion(sec1), ptypes.ErrStructuralIntegrityError)

		ob.QueueSecPageMarker(sec1)
		ob.QueueSecPageMarker(sec2)
		require.NoError(ob.NotifyStartOfExpansion(sec1))
		require.NoError(ob.NotifyStartOfExpansion(sec2))
		require.ErrorIs(ob.NotifyEndOfExpansion(sec1), ptypes.ErrStructuralIntegrityError)
	})
}
