/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package main

const (
	Default_Market = "GBL"

	searchKeySeparator = "="
)
