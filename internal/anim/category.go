// Package anim holds the frame sequences that make up the pet's animations,
// the player that steps through them, and the loader that discovers them on disk.
package anim

import (
	"fmt"
	"strings"
)

// Category identifies what an animation depicts
type Category int

const (
	Idle Category = iota
	Happy
	Sad
	Eating
	Sleeping
	Walking
	Petted
	Dragged
)

// Categories lists every category in declaration order
var Categories = []Category{Idle, Happy, Sad, Eating, Sleeping, Walking, Petted, Dragged}

var categoryNames = map[Category]string{
	Idle:     "Idle",
	Happy:    "Happy",
	Sad:      "Sad",
	Eating:   "Eating",
	Sleeping: "Sleeping",
	Walking:  "Walking",
	Petted:   "Petted",
	Dragged:  "Dragged",
}

// String returns the category name, which is also its asset directory name
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves a category from its name, ignoring case
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(categoryNames[c], s) {
			return c, nil
		}
	}
	return Idle, fmt.Errorf("unknown animation category %q", s)
}
