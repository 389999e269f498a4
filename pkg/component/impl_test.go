/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/testingu"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/ptypes"
	"github.com/voedger/cbuffer/pkg/rowsets"
	"github.com/voedger/cbuffer/pkg/stmts"
	"github.com/voedger/cbuffer/pkg/trace"
)

func testSource() *defs.MemSource {
	none := defs.DefaultSource{}
	src := defs.NewMemSource().
		AddRecord(defs.NewRecord("JOB_SRCH", defs.RecordKind_View).
			AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key|defs.FieldFlag_SearchKey, none)).
		AddRecord(defs.NewRecord("JOB", defs.RecordKind_Table).
			AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, none).
			AddField("EFFDT", ptypes.Kind_Date, defs.FieldFlag_Key, defs.ConstantDefault("%date")).
			AddField("STATUS", ptypes.Kind_Char, 0, defs.ConstantDefault("A")).
			AddField("REGION", ptypes.Kind_String, 0, defs.ConstantDefault("US")).
			AddField("COMPANY", ptypes.Kind_String, 0, defs.RecordDefault("EMPL_DFLT", "COMPANY"))).
		AddRecord(defs.NewRecord("EMPL_DFLT", defs.RecordKind_Table).
			AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, none).
			AddField("COMPANY", ptypes.Kind_String, 0, none)).
		AddRecord(defs.NewRecord("JOB_LOC", defs.RecordKind_Table).
			AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, none).
			AddField("CITY", ptypes.Kind_String, 0, defs.ConstantDefault("London"))).
		AddRecord(defs.NewRecord("DTL", defs.RecordKind_Table).
			AddField("INFO", ptypes.Kind_String, 0, none)).
		AddRecord(defs.NewRecord("WRK", defs.RecordKind_Derived).
			AddField("NOTE", ptypes.Kind_String, 0, none)).
		AddRecord(defs.NewRecord("OTH", defs.RecordKind_Derived).
			AddField("X", ptypes.Kind_String, 0, none))

	src.AddPage(defs.NewPage("MAIN").
		AddField("JOB", "EMPLID").
		AddSecPage("SEC").
		AddSubPage("SUB").
		AddScroll("JOB_LOC", 1).
		AddField("JOB_LOC", "CITY"))
	src.AddPage(defs.NewPage("SUB").
		AddField("JOB", "STATUS").
		AddField("WRK", "NOTE"))
	src.AddPage(defs.NewPage("SEC").
		AddField("DTL", "INFO"))
	src.AddPage(defs.NewPage("OTHER").
		AddField("JOB", "REGION").
		AddField("JOB", "COMPANY").
		AddField("OTH", "X"))

	c := defs.NewComponent("JOB_DATA", "GBL").AddPage("MAIN", "OTHER")
	c.SearchRecord = "JOB_SRCH"
	src.AddComponent(c)
	return src
}

func testConfig(src defs.IDefnSource, sink trace.ISink, reg progs.IRegistry, interp progs.IInterpreter) rowsets.Config {
	return rowsets.Config{
		Defs:        src,
		Registry:    reg,
		Interpreter: interp,
		Sink:        sink,
		Clock:       testingu.NewMockTime(),
		Executor:    stmts.NewMemExecutor().AddRow("PS_EMPL_DFLT", stmts.Row{"EMPLID": "E1", "COMPANY": "ACME"}),
	}
}

type mockInterpreter struct {
	mock.Mock
}

func (m *mockInterpreter) Run(ctx context.Context, ec progs.ExecContext) error {
	return m.Called(ctx, ec).Error(0)
}

func program(rec, field string, ev progs.Event) *progs.Program {
	return progs.NewProgram(progs.RecordProgramKey(rec, field, ev), "stmt;")
}

func writeOnRun(value string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		f := args.Get(1).(progs.ExecContext).Context.(*rowsets.Field)
		_ = ptypes.SystemWriteString(f.Value(), value)
	}
}

func TestLoad(t *testing.T) {
	reg := progs.NewRegistry().
		Add(program("JOB_SRCH", "EMPLID", progs.Event_SearchInit)).
		Add(program("JOB_SRCH", "EMPLID", progs.Event_SearchSave)).
		Add(program("JOB", "EMPLID", progs.Event_PreBuild)).
		Add(program("JOB", "STATUS", progs.Event_FieldDefault)).
		Add(program("WRK", "NOTE", progs.Event_FieldDefault)).
		Add(program("JOB", "EMPLID", progs.Event_RowInit)).
		Add(progs.NewProgram(progs.ComponentProgramKey("JOB_DATA", "GBL", "JOB_LOC", "CITY", progs.Event_RowInit), "stmt;")).
		Add(program("JOB", "EMPLID", progs.Event_SaveEdit))

	interp := &mockInterpreter{}
	interp.On("Run", mock.Anything, mock.MatchedBy(func(ec progs.ExecContext) bool {
		return ec.Program.Key() == progs.RecordProgramKey("WRK", "NOTE", progs.Event_FieldDefault)
	})).Run(writeOnRun("noted")).Return(nil)
	interp.On("Run", mock.Anything, mock.Anything).Return(nil)

	verifier := trace.NewVerifier(
		trace.PCBeginEmission{Program: "JOB_SRCH.EMPLID.SearchInit"},
		trace.PCBeginEmission{Program: "JOB_SRCH.EMPLID.SearchSave"},
		trace.PCBeginEmission{Program: "JOB.EMPLID.PreBuild", Row: 1},
		trace.FieldDefaultEmission{Record: "JOB", Field: "EFFDT", Value: "2014-11-30", Source: trace.SourceKind_Meta, MetaValue: "%date"},
		trace.FieldDefaultEmission{Record: "JOB", Field: "STATUS", Value: "A", Source: trace.SourceKind_Constant},
		trace.FieldDefaultEmission{Record: "JOB", Field: "REGION", Value: "US", Source: trace.SourceKind_Constant},
		trace.FieldDefaultEmission{Record: "JOB", Field: "COMPANY", Value: "ACME", Source: trace.SourceKind_Record},
		trace.PCBeginEmission{Program: "WRK.NOTE.FieldDefault", Row: 1},
		trace.FieldDefaultEmission{Record: "JOB_LOC", Field: "CITY", Value: "London", Source: trace.SourceKind_Constant},
		trace.PCBeginEmission{Program: "JOB.EMPLID.RowInit", Row: 1},
		trace.PCBeginEmission{Program: "JOB_DATA.GBL.JOB_LOC.CITY.RowInit", Level: 1, Row: 1},
		trace.PCBeginEmission{Program: "JOB.EMPLID.SaveEdit", Row: 1},
	)

	src := testSource()
	c, err := Load(context.Background(), testConfig(src, verifier, reg, interp), "JOB_DATA", "", WithSearchKey("EMPLID", "E1"))
	require.NoError(t, err)

	require.Equal(t, "JOB_DATA", c.Runtime().Component)
	require.Equal(t, "GBL", c.Runtime().Market)
	require.Equal(t, "component «JOB_DATA.GBL»", c.String())

	t.Run("records are listed in expanded page order", func(t *testing.T) {
		require := require.New(t)
		require.Equal([]string{"JOB", "DTL", "WRK", "JOB_LOC", "OTH"}, c.Stats().Listed)
	})

	t.Run("defaults are settled in two passes", func(t *testing.T) {
		require := require.New(t)
		s := c.Stats()
		require.Equal(2, s.DefaultPasses)
		require.Equal(6, s.FieldsDefaulted)
		require.Equal(6, s.ProgramsExecuted)
		interp.AssertNumberOfCalls(t, "Run", 6)
	})

	t.Run("search record", func(t *testing.T) {
		require := require.New(t)
		require.Same(c.SearchRecord(), c.Runtime().SearchRecord())
		f, ok := c.SearchRecord().Field("EMPLID")
		require.True(ok)
		require.Equal("E1", f.Value().ReadAsString())
	})

	t.Run("buffer tree", func(t *testing.T) {
		require := require.New(t)
		require.Equal(
			"Scroll 0 «»\n"+
				"  Record JOB\n"+
				"    JOB.EMPLID\n"+
				"    JOB.EFFDT\n"+
				"    JOB.STATUS\n"+
				"    JOB.REGION\n"+
				"    JOB.COMPANY\n"+
				"  Record DTL\n"+
				"    DTL.INFO\n"+
				"  Record WRK\n"+
				"    WRK.NOTE\n"+
				"  Record OTH\n"+
				"    OTH.X\n"+
				"      Scroll 1 «JOB_LOC»\n"+
				"        Record JOB_LOC (primary)\n"+
				"          JOB_LOC.CITY\n",
			c.Dump())
	})

	t.Run("scrolls", func(t *testing.T) {
		require := require.New(t)
		require.Equal(
			"Scroll 0 «»\n"+
				"  Row 1\n"+
				"    Record JOB\n"+
				"      EMPLID=''\n"+
				"      EFFDT='2014-11-30'\n"+
				"      STATUS='A'\n"+
				"      REGION='US'\n"+
				"      COMPANY='ACME'\n"+
				"    Record DTL\n"+
				"      INFO=''\n"+
				"    Record WRK\n"+
				"      NOTE='noted'\n"+
				"    Record OTH\n"+
				"      X=''\n"+
				"    Scroll 1 «JOB_LOC»\n"+
				"      Row 1\n"+
				"        Record JOB_LOC\n"+
				"          CITY='London'\n",
			c.EmitScrolls())
	})

	t.Run("save", func(t *testing.T) {
		require := require.New(t)
		require.Error(verifier.Done())
		require.NoError(c.Save(context.Background()))
		require.NoError(verifier.Done())
		require.Equal(7, c.Stats().ProgramsExecuted)
	})
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown component", func(t *testing.T) {
		require := require.New(t)
		src := testSource()
		_, err := Load(ctx, testConfig(src, nil, nil, nil), "NONE", "GBL")
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("unknown search key", func(t *testing.T) {
		require := require.New(t)
		src := testSource()
		_, err := Load(ctx, testConfig(src, nil, nil, nil), "JOB_DATA", "GBL", WithSearchKey("NONE", "1"))
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("search keys without search record", func(t *testing.T) {
		require := require.New(t)
		src := testSource()
		src.AddComponent(defs.NewComponent("NOSRCH", "GBL").AddPage("SEC"))
		_, err := Load(ctx, testConfig(src, nil, nil, nil), "NOSRCH", "GBL", WithSearchKey("EMPLID", "1"))
		require.ErrorIs(err, ptypes.ErrUnsupportedError)

		c, err := Load(ctx, testConfig(src, nil, nil, nil), "NOSRCH", "GBL")
		require.NoError(err)
		require.Nil(c.SearchRecord())
	})

	t.Run("cyclic secondary pages", func(t *testing.T) {
		require := require.New(t)
		src := testSource()
		src.AddPage(defs.NewPage("P1").AddField("DTL", "INFO").AddSecPage("P2"))
		src.AddPage(defs.NewPage("P2").AddSecPage("P1"))
		src.AddComponent(defs.NewComponent("CYCLE", "GBL").AddPage("P1"))
		_, err := Load(ctx, testConfig(src, nil, nil, nil), "CYCLE", "GBL")
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
	})

	t.Run("unknown record", func(t *testing.T) {
		require := require.New(t)
		src := testSource()
		src.AddPage(defs.NewPage("BAD").AddField("NONE", "F"))
		src.AddComponent(defs.NewComponent("BAD", "GBL").AddPage("BAD"))
		_, err := Load(ctx, testConfig(src, nil, nil, nil), "BAD", "GBL")
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})
}

func TestDefaultPassLimit(t *testing.T) {
	require := require.New(t)

	src := testSource()
	reg := progs.NewRegistry().
		Add(program("WRK", "NOTE", progs.Event_FieldDefault)).
		Add(program("OTH", "X", progs.Event_FieldDefault))

	// NOTE and X blank each other, defaults never settle
	blankOther := func(rec, field, value string) func(mock.Arguments) {
		return func(args mock.Arguments) {
			f := args.Get(1).(progs.ExecContext).Context.(*rowsets.Field)
			_ = ptypes.SystemWriteString(f.Value(), value)
			other, ok := f.ResolveField(rec, field)
			require.True(ok)
			require.NoError(other.SetDefault())
			other.Value().ResetUpdated()
		}
	}
	interp := &mockInterpreter{}
	interp.On("Run", mock.Anything, mock.MatchedBy(func(ec progs.ExecContext) bool {
		return ec.Program.Key().Record == "WRK"
	})).Run(blankOther("OTH", "X", "n")).Return(nil)
	interp.On("Run", mock.Anything, mock.MatchedBy(func(ec progs.ExecContext) bool {
		return ec.Program.Key().Record == "OTH"
	})).Run(blankOther("WRK", "NOTE", "x")).Return(nil)

	c, err := Load(context.Background(), testConfig(src, nil, reg, interp), "JOB_DATA", "GBL", WithDefaultPassLimit(3))
	require.NoError(err)
	require.Equal(3, c.Stats().DefaultPasses)
	require.Equal("", c.Root().Rows()[0].Records()[2].Fields()[0].Value().ReadAsString())
}
