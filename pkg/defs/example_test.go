/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs_test

import (
	"fmt"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/ptypes"
)

func Example() {
	src := defs.NewMemSource()

	// how to build records with subrecords
	src.AddRecord(defs.NewRecord("JOB", defs.RecordKind_Table).
		AddField("EMPLID", ptypes.Kind_String, defs.FieldFlag_Key, defs.DefaultSource{}).
		AddField("EFFDT", ptypes.Kind_Date, defs.FieldFlag_Key, defs.ConstantDefault("%date")).
		AddSubRecord("ADDR"))
	src.AddRecord(defs.NewRecord("ADDR", defs.RecordKind_SubRecord).
		AddField("CITY", ptypes.Kind_String, 0, defs.ConstantDefault("London")))

	// how to build pages and flatten them into token stream
	src.AddPage(defs.NewPage("MAIN").AddField("JOB", "EMPLID").AddSubPage("ADDR_SUB"))
	src.AddPage(defs.NewPage("ADDR_SUB").AddField("JOB", "CITY"))

	job, err := src.Record("JOB")
	if err != nil {
		panic(err)
	}
	for _, f := range job.ExpandedFields() {
		fmt.Println(f, f.Default.Kind.TrimString())
	}

	stream, err := defs.TokenStream(src, "MAIN")
	if err != nil {
		panic(err)
	}
	for _, t := range stream {
		fmt.Println(t)
	}

	// Output:
	// JOB.EMPLID None
	// JOB.EFFDT Meta
	// ADDR.CITY Constant
	// [Page] «MAIN»
	// [] JOB.EMPLID
	// [Page SubPage] «ADDR_SUB»
	// [] JOB.CITY
	// END_OF_PAGE
	// END_OF_PAGE
}
