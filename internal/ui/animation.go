package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vpet/internal/anim"
)

// Sprites holds the terminal rendering of each animation category. The
// player's frame index selects a sprite frame, wrapping when the loaded
// sequence has more frames than the sprite.
var Sprites = map[anim.Category][]string{
	anim.Idle: {
		` /\_/\
( o.o )
 > ^ <`,
		` /\_/\
( -.- )
 > ^ <`,
	},
	anim.Happy: {
		` /\_/\  ♪
( ^.^ )
 > ^ <`,
		` /\_/\    ♪
( ^o^ )
 / ^ \`,
	},
	anim.Sad: {
		` /\_/\
( T.T )
 > ^ <`,
		` /\_/\
( ;.; )
  ^ ^`,
	},
	anim.Eating: {
		` /\_/\
( o.o )  o
 > ^ <`,
		` /\_/\
( >.< ) nom
 > ^ <`,
	},
	anim.Sleeping: {
		` /\_/\    z
( -.- )
 > ^ <`,
		` /\_/\   Zz
( -.- )
 > ^ <`,
	},
	anim.Walking: {
		` /\_/\
( o.o )
 /   >`,
		` /\_/\
( o.o )
 <   \`,
	},
	anim.Petted: {
		` /\_/\  <3
( ^.^ )
 > ^ <`,
		` /\_/\ <3 <3
( =.= )
 > ^ <`,
	},
	anim.Dragged: {
		` /\_/\  !
( O.O )
 /| |\`,
		` /\_/\ !!
( O.O )
 \| |/`,
	},
}

// SpriteFor returns the sprite frame for category c at a player frame index.
// Unknown categories draw as Idle.
func SpriteFor(c anim.Category, frameIndex int) string {
	frames := Sprites[c]
	if len(frames) == 0 {
		frames = Sprites[anim.Idle]
	}
	i := frameIndex % len(frames)
	if i < 0 {
		i += len(frames)
	}
	return frames[i]
}

// SpriteSize returns the cell footprint that fits every sprite frame
func SpriteSize() (width, height int) {
	for _, frames := range Sprites {
		for _, f := range frames {
			width = max(width, lipgloss.Width(f))
			height = max(height, strings.Count(f, "\n")+1)
		}
	}
	return width, height
}
