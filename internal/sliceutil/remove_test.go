package sliceutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []int
		want []int
	}{
		{desc: "empty"},
		{
			desc: "none match",
			give: []int{1, 3, 5},
			want: []int{1, 3, 5},
		},
		{
			desc: "some match",
			give: []int{1, 2, 3, 4, 5},
			want: []int{1, 3, 5},
		},
		{
			desc: "all match",
			give: []int{2, 4, 6},
			want: []int{},
		},
	}

	isEven := func(i int) bool { return i%2 == 0 }

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := RemoveFunc(tt.give, isEven)
			assert.Equal(t, tt.want, got)
		})
	}
}
