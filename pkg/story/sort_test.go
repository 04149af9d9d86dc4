package story_test

import (
	"testing"

	"github.com/aretw0/fabula/pkg/story"
	"github.com/stretchr/testify/assert"
)

func TestSortIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "numeric ascending then lexicographic",
			in:   []string{"10", "2", "abc", "1"},
			want: []string{"1", "2", "10", "abc"},
		},
		{
			name: "non-numeric ids tie-break lexicographically",
			in:   []string{"zeta", "alpha", "5", "mid"},
			want: []string{"5", "alpha", "mid", "zeta"},
		},
		{
			name: "overflowing digit string ranks with non-numeric",
			in:   []string{"99999999999999999999", "3", "beta"},
			want: []string{"3", "99999999999999999999", "beta"},
		},
		{
			name: "mixed id with digits is not numeric",
			in:   []string{"1a", "2", "1"},
			want: []string{"1", "2", "1a"},
		},
		{
			name: "empty id ranks with non-numeric",
			in:   []string{"1", "", "a"},
			want: []string{"1", "", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := append([]string(nil), tt.in...)
			story.SortIDs(ids)
			assert.Equal(t, tt.want, ids)
		})
	}
}
