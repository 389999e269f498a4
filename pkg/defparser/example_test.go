/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser_test

import (
	"fmt"

	"github.com/voedger/cbuffer/pkg/defparser"
	"github.com/voedger/cbuffer/pkg/progs"
)

func ExampleParse() {
	res, err := defparser.Parse("example.cbd", `
		RECORD JOB TABLE (EMPLID String KEY, STATUS Char DEFAULT 'A');
		PAGE MAIN (FIELD JOB.EMPLID, FIELD JOB.STATUS);
		COMPONENT JOB_DATA PAGES (MAIN);
		PROGRAM COMPONENT JOB_DATA GBL JOB.STATUS FieldChange ('WinMessage("changed")');
	`)
	if err != nil {
		panic(err)
	}

	c, _ := res.Defs.Component("JOB_DATA", "")
	fmt.Println(c, c.Pages())

	res.Programs.Programs(func(p progs.IProgram) {
		fmt.Println(p.Key())
	})

	_, err = defparser.Parse("broken.cbd", `PAGE MAIN (FIELD JOB.EMPLID);`)
	fmt.Println(err)

	// Output:
	// component «JOB_DATA.GBL» [MAIN]
	// JOB_DATA.GBL.JOB.STATUS.FieldChange
	// broken.cbd:1:12: not found: record «JOB»
}
