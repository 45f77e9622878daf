package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlashcardMastery_Tags(t *testing.T) {
	var m FlashcardMastery

	assert.False(t, m.HasTag(TagRecentlyLearned))

	m = m.WithTag(TagRecentlyLearned)
	assert.True(t, m.HasTag(TagRecentlyLearned))

	again := m.WithTag(TagRecentlyLearned)
	assert.Equal(t, []string{TagRecentlyLearned}, again.Tags, "adding twice keeps one copy")

	m = m.WithTag(TagMastered)
	m = m.WithoutTag(TagRecentlyLearned)
	assert.Equal(t, []string{TagMastered}, m.Tags)

	m = m.WithoutTag("never there")
	assert.Equal(t, []string{TagMastered}, m.Tags)
}

func TestFlashcardMastery_TagsCopyOnWrite(t *testing.T) {
	original := FlashcardMastery{Tags: []string{"a", "b"}}

	_ = original.WithoutTag("a")
	_ = original.WithTag("c")

	assert.Equal(t, []string{"a", "b"}, original.Tags, "updates must not alias the original slice")
}
