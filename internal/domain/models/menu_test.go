package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuOption(t *testing.T) {
	cases := map[string]MenuOption{
		"1":   MenuAdd,
		" 2 ": MenuList,
		"3\r": MenuUpdate,
		"4":   MenuDelete,
		"5":   MenuExit,
		"":    MenuUnknown,
		"6":   MenuUnknown,
		"add": MenuUnknown,
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseMenuOption(input), "input %q", input)
	}
}
