/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package defs

// Component definition
type Component struct {
	Name            string
	Market          string
	SearchRecord    string
	AddSearchRecord string
	PrimaryAction   PrimaryAction
	pages           []string
}

func NewComponent(name, market string) *Component {
	if market == "" {
		market = MarketGlobal
	}
	return &Component{Name: name, Market: market, PrimaryAction: PrimaryAction_Search}
}

func (c *Component) AddPage(names ...string) *Component {
	c.pages = append(c.pages, names...)
	return c
}

// Returns top-level page names in component order
func (c *Component) Pages() []string { return c.pages }

// Returns search record used for the primary action.
//
// New action prefers add-search record if it is set
func (c *Component) SearchRecordToUse() string {
	if c.PrimaryAction == PrimaryAction_New && c.AddSearchRecord != "" {
		return c.AddSearchRecord
	}
	return c.SearchRecord
}

func (c *Component) String() string { return "component «" + c.Name + "." + c.Market + "»" }
