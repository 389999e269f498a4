/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

// Implicit effective-date key field
const EffDtFieldName = "EFFDT"

// Meta-value resolved to the current date
const MetaValue_Date = "%date"

// Prefix of meta-value defaults
const MetaValuePrefix = "%"

// Physical table name prefix
const TablePrefix = "PS_"

// Default market
const MarketGlobal = "GBL"
