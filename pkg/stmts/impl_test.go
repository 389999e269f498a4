/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package stmts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/goutils/testingu"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

type mapKeys map[string]string

func (m mapKeys) ResolveKey(field string) (string, bool) {
	v, ok := m[field]
	return v, ok && v != ""
}

func testRecords(t *testing.T) (dept, company *defs.Record) {
	src := defs.NewMemSource().
		AddRecord(defs.NewRecord("DEPT_TBL", defs.RecordKind_Table).
			AddField("SETID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("DEPTID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("EFFDT", ptypes.Kind_Date, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("DESCR", ptypes.Kind_String, 0, defs.DefaultSource{})).
		AddRecord(defs.NewRecord("COMPANY", defs.RecordKind_Table).
			AddField("COMPANY", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
			AddField("CURRENCY", ptypes.Kind_String, 0, defs.DefaultSource{}).
			AddField("OPENED", ptypes.Kind_Date, 0, defs.DefaultSource{}))
	var err error
	dept, err = src.Record("DEPT_TBL")
	require.NoError(t, err)
	company, err = src.Record("COMPANY")
	require.NoError(t, err)
	return dept, company
}

func testExecutor() *MemExecutor {
	return NewMemExecutor().
		AddRow("PS_DEPT_TBL", Row{"SETID": "SHARE", "DEPTID": "10", "EFFDT": "2001-01-01", "DESCR": "Sales"}).
		AddRow("PS_DEPT_TBL", Row{"SETID": "SHARE", "DEPTID": "10", "EFFDT": "2010-01-01", "DESCR": "Sales & Marketing"}).
		AddRow("PS_DEPT_TBL", Row{"SETID": "SHARE", "DEPTID": "10", "EFFDT": "2020-01-01", "DESCR": "Future"}).
		AddRow("PS_DEPT_TBL", Row{"SETID": "SHARE", "DEPTID": "20", "EFFDT": "2001-01-01", "DESCR": "Finance"}).
		AddRow("PS_COMPANY", Row{"COMPANY": "ACME", "CURRENCY": "USD", "OPENED": "1999-05-01"}).
		AddRow("PS_COMPANY", Row{"COMPANY": "ACME", "CURRENCY": "EUR", "OPENED": "2005-05-01"})
}

func TestNonConstantDefaultQuery(t *testing.T) {
	dept, company := testRecords(t)
	lib := NewLibrary(testingu.NewMockTime(), 0)

	t.Run("effective-dated statement", func(t *testing.T) {
		require := require.New(t)
		stmt, err := lib.NonConstantDefaultQuery(dept, "DESCR", mapKeys{"SETID": "SHARE", "DEPTID": "10"})
		require.NoError(err)
		require.Equal("SELECT A.DESCR FROM PS_DEPT_TBL A WHERE A.SETID=? AND A.DEPTID=? AND "+
			"A.EFFDT=(SELECT MAX(EFFDT) FROM PS_DEPT_TBL B WHERE B.SETID=A.SETID AND B.DEPTID=A.DEPTID AND B.EFFDT<=TO_DATE(?,'YYYY-MM-DD'))",
			stmt.SQL)
		require.Equal([]string{"SHARE", "10", "2014-11-30"}, stmt.Binds)

		rs, err := QueryOne(context.Background(), testExecutor(), stmt)
		require.NoError(err)
		require.NotNil(rs)
		v, ok := rs.Value(0, "DESCR")
		require.True(ok)
		require.Equal("Sales & Marketing", v)
	})

	t.Run("unresolvable key is deferred", func(t *testing.T) {
		require := require.New(t)
		_, err := lib.NonConstantDefaultQuery(dept, "DESCR", mapKeys{"SETID": "SHARE"})
		require.ErrorIs(err, ptypes.ErrDeferredResolutionError)
		require.False(ptypes.IsFatal(err))
	})

	t.Run("no rows", func(t *testing.T) {
		require := require.New(t)
		stmt, err := lib.NonConstantDefaultQuery(dept, "DESCR", mapKeys{"SETID": "SHARE", "DEPTID": "99"})
		require.NoError(err)
		rs, err := QueryOne(context.Background(), testExecutor(), stmt)
		require.NoError(err)
		require.Nil(rs)
	})

	t.Run("multiple rows", func(t *testing.T) {
		require := require.New(t)
		stmt, err := lib.NonConstantDefaultQuery(company, "CURRENCY", mapKeys{"COMPANY": "ACME"})
		require.NoError(err)
		require.Equal("SELECT A.CURRENCY FROM PS_COMPANY A WHERE A.COMPANY=?", stmt.SQL)
		_, err = QueryOne(context.Background(), testExecutor(), stmt)
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
	})

	t.Run("date fields are selected with TO_CHAR", func(t *testing.T) {
		require := require.New(t)
		stmt, err := lib.NonConstantDefaultQuery(company, "OPENED", mapKeys{"COMPANY": "ACME"})
		require.NoError(err)
		require.Equal("SELECT TO_CHAR(A.OPENED,'YYYY-MM-DD') FROM PS_COMPANY A WHERE A.COMPANY=?", stmt.SQL)
		rs, err := testExecutor().Query(context.Background(), stmt)
		require.NoError(err)
		require.Equal([]string{"OPENED"}, rs.Columns)
		require.Len(rs.Rows, 2)
	})

	t.Run("unknown default field", func(t *testing.T) {
		require := require.New(t)
		_, err := lib.NonConstantDefaultQuery(dept, "NONE", mapKeys{})
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("templates are cached", func(t *testing.T) {
		require := require.New(t)
		s1, err := lib.NonConstantDefaultQuery(dept, "DESCR", mapKeys{"SETID": "A", "DEPTID": "1"})
		require.NoError(err)
		s2, err := lib.NonConstantDefaultQuery(dept, "DESCR", mapKeys{"SETID": "B", "DEPTID": "2"})
		require.NoError(err)
		require.Same(s1.ast, s2.ast)
	})
}

func TestEffectiveDateFollowsClock(t *testing.T) {
	require := require.New(t)

	dept, _ := testRecords(t)
	clock := testingu.NewMockTime()
	lib := NewLibrary(clock, 1)
	exec := testExecutor()
	keys := mapKeys{"SETID": "SHARE", "DEPTID": "10"}

	descr := func() string {
		stmt, err := lib.NonConstantDefaultQuery(dept, "DESCR", keys)
		require.NoError(err)
		rs, err := QueryOne(context.Background(), exec, stmt)
		require.NoError(err)
		v, _ := rs.Value(0, "DESCR")
		return v
	}

	require.Equal("Sales & Marketing", descr())
	clock.Add(10 * 365 * 24 * time.Hour)
	require.Equal("Future", descr())
}

func TestSelectByKeyEffDt(t *testing.T) {
	require := require.New(t)

	dept, _ := testRecords(t)
	lib := NewLibrary(testingu.NewMockTime(), 0)

	stmt, err := lib.SelectByKeyEffDt(dept, mapKeys{"SETID": "SHARE", "DEPTID": "20"})
	require.NoError(err)
	rs, err := testExecutor().Query(context.Background(), stmt)
	require.NoError(err)
	require.Equal([]string{"SETID", "DEPTID", "EFFDT", "DESCR"}, rs.Columns)
	require.Equal([][]string{{"SHARE", "20", "2001-01-01", "Finance"}}, rs.Rows)
}

func TestFillQuery(t *testing.T) {
	dept, _ := testRecords(t)
	lib := NewLibrary(testingu.NewMockTime(), 0)

	stmt, err := lib.FillQuery(dept, "WHERE SETID = :1 AND EFFDT >= %DateIn(:2)", "SHARE", "2005-01-01")
	require.NoError(t, err)
	require.Equal(t, "SELECT SETID,DEPTID,TO_CHAR(EFFDT,'YYYY-MM-DD'),DESCR FROM PS_DEPT_TBL "+
		"WHERE SETID = ? AND EFFDT >= TO_DATE(?,'YYYY-MM-DD')", stmt.SQL)

	rs, err := testExecutor().Query(context.Background(), stmt)
	require.NoError(t, err)
	require.Len(t, rs.Rows, 2)
	require.Equal(t, "2010-01-01", rs.Rows[0][2])
	require.Equal(t, "2020-01-01", rs.Rows[1][2])

	t.Run("empty where", func(t *testing.T) {
		require := require.New(t)
		stmt, err := lib.FillQuery(dept, "")
		require.NoError(err)
		rs, err := testExecutor().Query(context.Background(), stmt)
		require.NoError(err)
		require.Len(rs.Rows, 4)
	})

	t.Run("invalid where", func(t *testing.T) {
		require := require.New(t)
		_, err := lib.FillQuery(dept, "WHERE (")
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
	})

	t.Run("bind sockets", func(t *testing.T) {
		tests := []struct {
			name  string
			where string
			binds []string
			sql   string
			want  []string
			rows  int
		}{
			{"out of order", "WHERE DEPTID = :2 AND SETID = :1", []string{"SHARE", "20"},
				"WHERE DEPTID = ? AND SETID = ?", []string{"20", "SHARE"}, 1},
			{"repeated", "WHERE SETID = :1 AND DESCR <> :1", []string{"SHARE"},
				"WHERE SETID = ? AND DESCR <> ?", []string{"SHARE", "SHARE"}, 4},
			{"inside literal", "WHERE DESCR <> '10:30' AND DEPTID = :1", []string{"10"},
				"WHERE DESCR <> '10:30' AND DEPTID = ?", []string{"10"}, 3},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require := require.New(t)
				stmt, err := lib.FillQuery(dept, tt.where, tt.binds...)
				require.NoError(err)
				require.Equal("SELECT SETID,DEPTID,TO_CHAR(EFFDT,'YYYY-MM-DD'),DESCR FROM PS_DEPT_TBL "+tt.sql, stmt.SQL)
				require.Equal(tt.want, stmt.Binds)

				rs, err := testExecutor().Query(context.Background(), stmt)
				require.NoError(err)
				require.Len(rs.Rows, tt.rows)
			})
		}
	})

	t.Run("socket without bind value", func(t *testing.T) {
		require := require.New(t)
		_, err := lib.FillQuery(dept, "WHERE SETID = :1 AND DEPTID = :3", "SHARE", "10")
		require.ErrorIs(err, ptypes.ErrOutOfBoundsError)
		require.ErrorContains(err, ":3")
	})

	t.Run("bind value without socket", func(t *testing.T) {
		require := require.New(t)
		_, err := lib.FillQuery(dept, "WHERE SETID = :1", "SHARE", "10")
		require.ErrorIs(err, ptypes.ErrStructuralIntegrityError)
		require.ErrorContains(err, "#2")
	})
}

func TestMemExecutorErrors(t *testing.T) {
	exec := testExecutor()

	t.Run("unknown table", func(t *testing.T) {
		require := require.New(t)
		_, err := exec.Query(context.Background(), &Statement{SQL: "SELECT A FROM PS_NONE"})
		require.ErrorIs(err, ptypes.ErrNotFoundError)
	})

	t.Run("missing bind", func(t *testing.T) {
		require := require.New(t)
		_, err := exec.Query(context.Background(), &Statement{SQL: "SELECT DESCR FROM PS_DEPT_TBL WHERE DEPTID = ?"})
		require.ErrorIs(err, ptypes.ErrOutOfBoundsError)
	})

	t.Run("not select", func(t *testing.T) {
		require := require.New(t)
		_, err := exec.Query(context.Background(), &Statement{SQL: "DELETE FROM PS_DEPT_TBL"})
		require.ErrorIs(err, ptypes.ErrUnsupportedError)
	})

	t.Run("canceled context", func(t *testing.T) {
		require := require.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := exec.Query(ctx, &Statement{SQL: "SELECT DESCR FROM PS_DEPT_TBL"})
		require.ErrorIs(err, context.Canceled)
	})
}
