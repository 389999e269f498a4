/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defparser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/cbuffer/pkg/defs"
	"github.com/voedger/cbuffer/pkg/progs"
	"github.com/voedger/cbuffer/pkg/stmts"
)

type fileAST struct {
	Statements []statement `parser:"@@*"`
}

type statement struct {
	Record    *recordStmt    `parser:"( @@"`
	Page      *pageStmt      `parser:"| @@"`
	Component *componentStmt `parser:"| @@"`
	Program   *programStmt   `parser:"| @@"`
	Data      *dataStmt      `parser:"| @@ ) ';'"`
}

type recordStmt struct {
	Pos    lexer.Position
	Name   string       `parser:"'RECORD' @Ident"`
	Kind   string       `parser:"@('TABLE' | 'VIEW' | 'DERIVED' | 'SUBRECORD')"`
	Fields []recordItem `parser:"'(' @@ (',' @@)* ')'"`
}

type recordItem struct {
	Pos       lexer.Position
	SubRecord string         `parser:"( 'SUBRECORD' @Ident"`
	Name      string         `parser:"| @Ident"`
	Type      string         `parser:"@Ident"`
	Flags     []string       `parser:"@('KEY' | 'SEARCHKEY' | 'DESCKEY' | 'LISTBOX')*"`
	Default   *defaultClause `parser:"('DEFAULT' @@)?"`
	Labels    []labelClause  `parser:"@@* )"`
}

// Literal or meta-value in quotes, or default record field
type defaultClause struct {
	Constant *string `parser:"( @String"`
	Record   string  `parser:"| @Ident '.'"`
	Field    string  `parser:"@Ident )"`
}

type labelClause struct {
	ID      string `parser:"'LABEL' @Ident"`
	Long    string `parser:"@String"`
	Short   string `parser:"@String?"`
	Primary bool   `parser:"@'PRIMARY'?"`
}

type pageStmt struct {
	Pos   lexer.Position
	Name  string     `parser:"'PAGE' @Ident"`
	Items []pageItem `parser:"'(' (@@ (',' @@)*)? ')'"`
}

type pageItem struct {
	Pos      lexer.Position
	Field    *pageField    `parser:"( @@"`
	Scroll   *pageScroll   `parser:"| @@"`
	GroupBox *pageGroupBox `parser:"| @@"`
	SubPage  *string       `parser:"| 'SUBPAGE' @Ident"`
	SecPage  *string       `parser:"| 'SECPAGE' @Ident )"`
}

type pageField struct {
	Record  string   `parser:"'FIELD' @Ident '.'"`
	Field   string   `parser:"@Ident"`
	ID      *int     `parser:"('ID' @Int)?"`
	Options []string `parser:"@('DISPLAYONLY' | 'INVISIBLE' | 'REQUIRED' | 'DISPLAYCONTROL' | 'LVLDEC')*"`
	Related *int     `parser:"('RELATED' @Int)?"`
}

type pageScroll struct {
	Record string `parser:"'SCROLL' @Ident"`
	Occurs int    `parser:"@Int"`
}

type pageGroupBox struct {
	Keyword string `parser:"@'GROUPBOX'"`
	LvlDec  bool   `parser:"@'LVLDEC'?"`
}

type componentStmt struct {
	Pos       lexer.Position
	Name      string   `parser:"'COMPONENT' @Ident"`
	Market    string   `parser:"('MARKET' @Ident)?"`
	Search    string   `parser:"('SEARCH' @Ident)?"`
	AddSearch string   `parser:"('ADDSEARCH' @Ident)?"`
	Action    string   `parser:"('ACTION' @('SEARCH' | 'NEW'))?"`
	Pages     []string `parser:"'PAGES' '(' @Ident (',' @Ident)* ')'"`
}

type programStmt struct {
	Pos        lexer.Position
	Component  *programComponent `parser:"'PROGRAM' ('COMPONENT' @@)?"`
	Record     string            `parser:"@Ident '.'"`
	Field      string            `parser:"@Ident"`
	Event      string            `parser:"@Ident"`
	Statements []string          `parser:"'(' (@String (',' @String)*)? ')'"`
}

type programComponent struct {
	Name   string `parser:"@Ident"`
	Market string `parser:"@Ident"`
}

type dataStmt struct {
	Pos     lexer.Position
	Record  string    `parser:"'DATA' @Ident"`
	Columns []string  `parser:"'(' @Ident (',' @Ident)* ')'"`
	Rows    []dataRow `parser:"'VALUES' @@ (',' @@)*"`
}

type dataRow struct {
	Pos    lexer.Position
	Values []string `parser:"'(' @String (',' @String)* ')'"`
}

// Parsed definitions, programs and default lookup data
type Result struct {
	Defs     *defs.MemSource
	Programs *progs.Registry
	Data     *stmts.MemExecutor
}
