package models

import "slices"

// CanRegister decides whether a member of chapterID may self-register for
// the event. A candidate without a chapter is never eligible for an event
// restricted to chapters.
func (e *Event) CanRegister(chapterID string) bool {
	if e.AllUsers {
		return true
	}

	if chapterID == "" {
		return false
	}

	return slices.Contains(e.ChapterIDs, chapterID)
}
