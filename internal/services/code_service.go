package services

import (
	"fmt"
	"strconv"
	"strings"

	"organizer/internal/repository"
)

// CodeService suggests the next box code for a room. The suggestion is
// presented to the user as editable text and is not re-checked for
// uniqueness at save time; two concurrent generations for the same room can
// suggest the same code.
type CodeService interface {
	NextCode(ownerID, room string) (string, error)
	RoomPrefix(room string) string
}

type codeServiceImpl struct {
	boxRepo repository.BoxRepository
}

func NewCodeService(boxRepo repository.BoxRepository) CodeService {
	return &codeServiceImpl{boxRepo: boxRepo}
}

// RoomPrefix derives the alphabetic prefix from a room's display name:
// initials of each word for multi-word names ("Living Room" -> "LR"),
// first two letters for single-word names ("Kitchen" -> "KI").
func (s *codeServiceImpl) RoomPrefix(room string) string {
	words := strings.Fields(room)
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		word := []rune(words[0])
		if len(word) == 1 {
			return strings.ToUpper(string(word))
		}
		return strings.ToUpper(string(word[:2]))
	}
	var prefix strings.Builder
	for _, word := range words {
		prefix.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return prefix.String()
}

// NextCode returns prefix + zero-padded sequence. The sequence is one past
// the highest numeric suffix among the owner's codes in that room, so a
// number is never re-issued after a delete.
func (s *codeServiceImpl) NextCode(ownerID, room string) (string, error) {
	prefix := s.RoomPrefix(room)
	boxes, err := s.boxRepo.FindByRoomForOwner(room, ownerID)
	if err != nil {
		return "", err
	}
	highest := 0
	for _, box := range boxes {
		code := strings.ToUpper(strings.TrimSpace(box.Code))
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		number, err := strconv.Atoi(code[len(prefix):])
		if err != nil {
			continue
		}
		if number > highest {
			highest = number
		}
	}
	return fmt.Sprintf("%s%02d", prefix, highest+1), nil
}
