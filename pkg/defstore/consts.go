/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import "time"

const (
	recordsBucketName    = "records"
	pagesBucketName      = "pages"
	componentsBucketName = "components"
)

const (
	// fastcache allocates at least 32 MB regardless of the requested size
	DefaultCacheSize = 32 * 1024 * 1024

	DefaultOpenTimeout = time.Second
)
