package models

import "strings"

// MenuOption enumerates the choices offered by the interactive shell.
type MenuOption string

const (
	MenuAdd     MenuOption = "1"
	MenuList    MenuOption = "2"
	MenuUpdate  MenuOption = "3"
	MenuDelete  MenuOption = "4"
	MenuExit    MenuOption = "5"
	MenuUnknown MenuOption = "unknown"
)

// MenuEntry pairs an option with the label printed in the menu.
type MenuEntry struct {
	Option MenuOption
	Label  string
}

// MenuEntries lists the menu in display order.
var MenuEntries = []MenuEntry{
	{Option: MenuAdd, Label: "Add a new harvest record"},
	{Option: MenuList, Label: "List all records"},
	{Option: MenuUpdate, Label: "Update a producer's records"},
	{Option: MenuDelete, Label: "Delete a producer's records"},
	{Option: MenuExit, Label: "Exit"},
}

// ParseMenuOption maps raw operator input to a MenuOption.
func ParseMenuOption(input string) MenuOption {
	switch normalized := MenuOption(strings.TrimSpace(input)); normalized {
	case MenuAdd, MenuList, MenuUpdate, MenuDelete, MenuExit:
		return normalized
	default:
		return MenuUnknown
	}
}
