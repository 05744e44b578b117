package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		raw  string
		want Style
	}{
		{"standard", StyleStandard},
		{"creative", StyleCreative},
		{" Technical ", StyleTechnical},
		{"EXECUTIVE", StyleExecutive},
		{"", StyleStandard},
		{"poetic", StyleStandard},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStyle(tt.raw))
		})
	}
}

func TestSetResumeReplacesPair(t *testing.T) {
	p := &Profile{ResumeFileName: "old.pdf", ResumeContent: "old text"}

	p.SetResume("new.pdf", "new text")

	assert.Equal(t, "new.pdf", p.ResumeFileName)
	assert.Equal(t, "new text", p.ResumeContent)
}
