package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Helped Sleep", "helped-sleep"},
		{"woke up at night!", "woke-up-at-night"},
		{"  perfect   dose  ", "perfect-dose"},
		{"Crème Brûlée", "creme-brulee"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.input), "input %q", tt.input)
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{"Helped Sleep", "helped sleep", "Felt Groggy", "", "felt groggy!"})
	assert.Equal(t, []string{"helped-sleep", "felt-groggy"}, got)
}
