package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostContent(t *testing.T) {
	assert.NoError(t, ValidatePostContent("Harvest update", "Great season this year", false))
	assert.NoError(t, ValidatePostContent("Photo only", "", true))
	assert.NoError(t, ValidatePostContent("Both", "text and file", true))
}

func TestValidatePostContent_TitleRequired(t *testing.T) {
	err := ValidatePostContent("", "some description", false)
	assert.ErrorIs(t, err, ErrPostTitleRequired)

	err = ValidatePostContent("   ", "some description", true)
	assert.ErrorIs(t, err, ErrPostTitleRequired)
}

func TestValidatePostContent_BodyRequired(t *testing.T) {
	err := ValidatePostContent("Title", "", false)
	assert.ErrorIs(t, err, ErrPostBodyRequired)

	err = ValidatePostContent("Title", "   ", false)
	assert.ErrorIs(t, err, ErrPostBodyRequired)
}

func TestValidatePostContent_DescriptionWordCap(t *testing.T) {
	atLimit := strings.TrimSpace(strings.Repeat("word ", MaxDescriptionWords))
	assert.NoError(t, ValidatePostContent("Title", atLimit, false))

	overLimit := strings.TrimSpace(strings.Repeat("word ", MaxDescriptionWords+1))
	err := ValidatePostContent("Title", overLimit, false)
	assert.ErrorIs(t, err, ErrPostDescTooLong)

	// The cap applies even when a file is attached.
	err = ValidatePostContent("Title", overLimit, true)
	assert.ErrorIs(t, err, ErrPostDescTooLong)
}
