package models

import "strings"

// Rooms a box can be assigned to. The list is fixed; clients pick from it.
var Rooms = []string{
	"Living Room",
	"Kitchen",
	"Bedroom",
	"Bathroom",
	"Office",
	"Garage",
	"Basement",
	"Attic",
	"Dining Room",
	"Other",
}

const RoomOther = "Other"

func IsValidRoom(room string) bool {
	for _, r := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// NormalizeRoom maps anything outside the fixed list to Other. Matching is
// case-insensitive so stored rows survive casing drift.
func NormalizeRoom(room string) string {
	for _, r := range Rooms {
		if strings.EqualFold(r, room) {
			return r
		}
	}
	return RoomOther
}

var roomColors = map[string]string{
	"Living Room": "#FF6B6B",
	"Kitchen":     "#4ECDC4",
	"Bedroom":     "#45B7D1",
	"Bathroom":    "#96CEB4",
	"Office":      "#FFEAA7",
	"Garage":      "#DDA0DD",
	"Basement":    "#98D8C8",
	"Attic":       "#F7DC6F",
	"Dining Room": "#BB8FCE",
	"Other":       "#AED6F1",
}

// RoomColor returns the display color for a room card.
func RoomColor(room string) string {
	return roomColors[NormalizeRoom(room)]
}
