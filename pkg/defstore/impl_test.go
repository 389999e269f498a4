/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func testSource() *defs.MemSource {
	src := defs.NewMemSource()
	src.AddRecord(defs.NewRecord("JOB", defs.RecordKind_Table).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key|defs.FieldFlag_SearchKey, defs.DefaultSource{},
			defs.FieldLabel{ID: "EMPLID", Long: "Employee ID", Short: "Empl", Default: true}).
		AddField("EFFDT", ptypes.Kind_Date, defs.FieldFlag_Key, defs.ConstantDefault("%date")).
		AddField("COMPANY", ptypes.Kind_String, 0, defs.RecordDefault("EMPL_DFLT", "COMPANY")).
		AddSubRecord("ADDR"))
	src.AddRecord(defs.NewRecord("ADDR", defs.RecordKind_SubRecord).
		AddField("CITY", ptypes.Kind_String, 0, defs.ConstantDefault("London")))
	src.AddRecord(defs.NewRecord("EMPL_DFLT", defs.RecordKind_Table).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
		AddField("COMPANY", ptypes.Kind_String, 0, defs.DefaultSource{}))
	src.AddRecord(defs.NewRecord("JOB_SRCH", defs.RecordKind_View).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_SearchKey, defs.DefaultSource{}))
	src.AddRecord(defs.NewRecord("JOB_LOC", defs.RecordKind_Table).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}))
	src.AddRecord(defs.NewRecord("UNUSED", defs.RecordKind_Derived).
		AddField("X", ptypes.Kind_Integer, 0, defs.DefaultSource{}))

	src.AddPage(defs.NewPage("MAIN").
		AddToken(&defs.PageToken{ID: 10, RecName: "JOB", FieldName: "EMPLID", Flags: defs.FlagsOf(defs.TokenFlag_DisplayControl)}).
		AddToken(&defs.PageToken{RecName: "JOB", FieldName: "COMPANY", FieldUse: defs.FieldUse_DisplayOnly,
			Flags: defs.FlagsOf(defs.TokenFlag_RelatedDisplay), DispControlID: 10}).
		AddSubPage("SUB").
		AddSecPage("SEC").
		AddScroll("JOB_LOC", 1).
		AddField("JOB_LOC", "EMPLID"))
	src.AddPage(defs.NewPage("SUB").AddField("JOB", "CITY"))
	src.AddPage(defs.NewPage("SEC").AddField("JOB", "EFFDT"))

	c := defs.NewComponent("JOB_DATA", "")
	c.SearchRecord = "JOB_SRCH"
	c.PrimaryAction = defs.PrimaryAction_New
	src.AddComponent(c.AddPage("MAIN"))
	return src
}

func openTestStore(t *testing.T, path string) *Store {
	s, err := Open(path, WithCacheSize(1024))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestImport(t *testing.T) {
	src := testSource()
	s := openTestStore(t, filepath.Join(t.TempDir(), "defs.db"))
	require.NoError(t, s.Import(src, "JOB_DATA"))

	t.Run("records", func(t *testing.T) {
		require := require.New(t)
		for _, name := range []string{"JOB", "ADDR", "EMPL_DFLT", "JOB_SRCH", "JOB_LOC"} {
			want, err := src.Record(name)
			require.NoError(err)
			got, err := s.Record(name)
			require.NoError(err, name)
			require.Equal(want.Kind, got.Kind)
			require.Equal(want.ExpandedFields(), got.ExpandedFields(), name)
		}

		_, err := s.Record("UNUSED")
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("pages", func(t *testing.T) {
		require := require.New(t)
		for _, name := range []string{"MAIN", "SUB", "SEC"} {
			want, err := src.Page(name)
			require.NoError(err)
			got, err := s.Page(name)
			require.NoError(err)
			require.Equal(want.Tokens(), got.Tokens(), name)
		}

		main, err := s.Page("MAIN")
		require.NoError(err)
		_, ok := main.Tokens()[0].RelatedField("JOB", "COMPANY")
		require.True(ok)
	})

	t.Run("components", func(t *testing.T) {
		require := require.New(t)
		want, err := src.Component("JOB_DATA", "")
		require.NoError(err)
		got, err := s.Component("JOB_DATA", defs.MarketGlobal)
		require.NoError(err)
		require.Equal(want, got)

		_, err = s.Component("JOB_DATA", "USA")
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("token stream", func(t *testing.T) {
		require := require.New(t)
		want, err := defs.TokenStream(src, "MAIN")
		require.NoError(err)
		got, err := defs.TokenStream(s, "MAIN")
		require.NoError(err)
		require.Equal(want, got)
	})
}

func TestImportErrors(t *testing.T) {
	require := require.New(t)

	s := openTestStore(t, filepath.Join(t.TempDir(), "defs.db"))

	err := s.Import(testSource(), "UNKNOWN")
	require.ErrorIs(err, ptypes.ErrNotFoundError)

	src := testSource()
	src.AddPage(defs.NewPage("MAIN").AddField("NOREC", "X"))
	err = s.Import(src, "JOB_DATA")
	require.ErrorIs(err, ptypes.ErrNotFoundError)
	require.ErrorContains(err, "NOREC")

	_, err = s.Component("JOB_DATA", "")
	require.ErrorIs(err, ptypes.ErrNotFoundError, "failed import must not write anything")
}

func TestReadThroughCache(t *testing.T) {
	src := testSource()
	s := openTestStore(t, filepath.Join(t.TempDir(), "defs.db"))
	require.NoError(t, s.Import(src, "JOB_DATA.GBL"))

	_, err := s.Record("EMPL_DFLT")
	require.NoError(t, err)
	require.Equal(t, 1, s.reads)

	_, err = s.Record("EMPL_DFLT")
	require.NoError(t, err)
	require.Equal(t, 1, s.reads, "second read must be served by cache")

	t.Run("import invalidates cached definitions", func(t *testing.T) {
		require := require.New(t)
		src.AddRecord(defs.NewRecord("EMPL_DFLT", defs.RecordKind_Table).
			AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("COMPANY", ptypes.Kind_String, 0, defs.DefaultSource{}).
			AddField("REGION", ptypes.Kind_String, 0, defs.DefaultSource{}))
		require.NoError(s.Import(src, "JOB_DATA"))

		r, err := s.Record("EMPL_DFLT")
		require.NoError(err)
		require.Len(r.ExpandedFields(), 3)
		require.Equal(2, s.reads)
	})
}

func TestReopen(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "defs.db")
	s, err := Open(path)
	require.NoError(err)
	require.NoError(s.Import(testSource(), "JOB_DATA"))
	require.NoError(s.Close())

	s = openTestStore(t, path)
	src := defs.NewCachedSource(s)

	c, err := src.Component("JOB_DATA", "")
	require.NoError(err)
	require.Equal("JOB_SRCH", c.SearchRecordToUse())

	job, err := src.Record("JOB")
	require.NoError(err)
	city, ok := job.Field("CITY")
	require.True(ok)
	require.Equal("ADDR", city.RecName)

	again, err := src.Record("JOB")
	require.NoError(err)
	require.Same(job, again)
}
