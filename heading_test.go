package diffmend_test

import (
	"testing"

	"github.com/fwojciec/diffmend"
	"github.com/stretchr/testify/assert"
)

func TestHeadingMarker_IsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: "【A】", want: true},
		{line: "  【Section two】  ", want: true},
		{line: "【A】 trailing text", want: true},
		{line: "【unclosed", want: false},
		{line: "】【", want: false},
		{line: "text 【A】", want: false},
		{line: "", want: false},
		{line: "[A]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, diffmend.DefaultHeadingMarker.IsHeading(tt.line))
		})
	}
}

func TestHeadingMarker_EmptyBrackets(t *testing.T) {
	t.Parallel()

	marker := diffmend.HeadingMarker{}

	assert.False(t, marker.IsHeading("anything"))
}

func TestHeadingMarker_Owners(t *testing.T) {
	t.Parallel()

	doc := diffmend.Document{"preface", " 【A】 ", "a", "【broken", "【B】", "b"}

	owners := diffmend.DefaultHeadingMarker.Owners(doc)

	assert.Equal(t, []string{"", "【A】", "【A】", "【A】", "【B】", "【B】"}, owners)
}

func TestOverflow_Header(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"", "---", "[Auto-Appended Missing Blocks]", ""},
		diffmend.DefaultOverflow.Header(),
	)
}
