/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package filesu

import "io/fs"

// Mode of created definition store and definition files, rw_rw_rw_ before umask
const FileMode_DefaultForFile fs.FileMode = 0666
