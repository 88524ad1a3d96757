package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int
	}{
		{"empty spec", "", []int{}},
		{"single page", "4", []int{4}},
		{"single range", "3-5", []int{3, 4, 5}},
		{"mixed pages and ranges", "1,3-5,10", []int{1, 3, 4, 5, 10}},
		{"descending range", "7-4", []int{7, 6, 5, 4}},
		{"single element range", "5-5", []int{5}},
		{"duplicates kept", "2,2,2", []int{2, 2, 2}},
		{"stray commas ignored", "1,,3", []int{1, 3}},
		{"trailing comma", "1,2,", []int{1, 2}},
		{"surrounding whitespace", " 1 , 3 - 5 , 10 ", []int{1, 3, 4, 5, 10}},
		{"order preserved", "10,1,5", []int{10, 1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageSpecInvalid(t *testing.T) {
	specs := []string{
		"x",
		"a-3",
		"3-b",
		"3-",
		"-",
		"1,2,bad",
		"1.5",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := ParsePageSpec(spec)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.NotEmpty(t, parseErr.Token)
		})
	}
}

func TestParsePageSpecDoesNotValidateBounds(t *testing.T) {
	// Bounds checking belongs to extraction, so oversized numbers pass.
	got, err := ParsePageSpec("9999")
	require.NoError(t, err)
	assert.Equal(t, []int{9999}, got)
}

func TestPageRange(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, PageRange(2, 4))
	assert.Equal(t, []int{4, 3, 2}, PageRange(4, 2))
	assert.Equal(t, []int{3}, PageRange(3, 3))
}
