/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser

import (
	"io/fs"
)

// Parses and validates single definition file
func Parse(fileName, content string) (*Result, error) {
	ast, err := parseImpl(fileName, content)
	if err != nil {
		return nil, err
	}
	return buildImpl(ast)
}

// Parses and validates all definition files from directory.
//
// Files are read in directory order and merged into single result
func ParseFS(fsys fs.FS, dir string) (*Result, error) {
	asts, err := parseFSImpl(fsys, dir)
	if err != nil {
		return nil, err
	}
	return buildImpl(asts...)
}
