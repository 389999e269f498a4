/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser

// Extension of definition files read by ParseFS
const FileExt = ".cbd"
