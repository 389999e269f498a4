/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package component

import "github.com/voedger/cbuffer/pkg/progs"

// Upper bound of default processing passes per component load
const DefaultPassLimit = 10

// Events fired on root rowset after defaults are settled, in order
var buildEvents = []progs.Event{
	progs.Event_FieldFormula,
	progs.Event_RowInit,
	progs.Event_PostBuild,
}

// Events fired on root rowset by save, in order
var saveEvents = []progs.Event{
	progs.Event_SaveEdit,
	progs.Event_SavePreChange,
	progs.Event_WorkFlow,
	progs.Event_SavePostChange,
}
