/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defstore

import (
	"errors"
	"fmt"
)

var ErrBucketNotFound = errors.New("definition store bucket not found")

func errDecode(bucket, key string, err error) error {
	return fmt.Errorf("decode %s «%s»: %w", bucket, key, err)
}
