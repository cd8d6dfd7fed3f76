package summary

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/typeref/typeref/internal/model"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	method := func(name string, params ...model.Param) *model.Element {
		return &model.Element{Name: name, Kind: model.KindMethods, Params: params}
	}

	tests := []struct {
		desc string
		a, b *model.Element
		want int // sign only
	}{
		{
			desc: "alphabetical",
			a:    method("alpha"),
			b:    method("beta"),
			want: -1,
		},
		{
			desc: "case ignored first",
			a:    method("Beta"),
			b:    method("alpha"),
			want: 1,
		},
		{
			desc: "case as tiebreak",
			a:    method("Alpha"),
			b:    method("alpha"),
			want: -1,
		},
		{
			desc: "overloads by signature",
			a:    method("resize", model.Param{Name: "w", Type: "double"}),
			b:    method("resize", model.Param{Name: "w", Type: "int"}),
			want: -1,
		},
		{
			desc: "kind as final tiebreak",
			a:    &model.Element{Name: "width", Kind: model.KindFields},
			b:    &model.Element{Name: "width", Kind: model.KindProperties},
			want: -1,
		},
		{
			desc: "equal keys",
			a:    method("resize"),
			b:    method("resize"),
			want: 0,
		},
	}

	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		default:
			return 0
		}
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sign(Compare(tt.a, tt.b)))
			assert.Equal(t, -tt.want, sign(Compare(tt.b, tt.a)), "antisymmetric")
		})
	}
}

func TestSortMembers(t *testing.T) {
	t.Parallel()

	c := &model.Element{Name: "c", Kind: model.KindMethods}
	a := &model.Element{Name: "a", Kind: model.KindMethods}
	b := &model.Element{Name: "B", Kind: model.KindMethods}

	in := []*model.Element{c, a, b}
	got := sortMembers(in)

	assert.Equal(t, []*model.Element{a, b, c}, got)
	assert.Equal(t, []*model.Element{c, a, b}, in, "input must not be mutated")
	assert.True(t, slices.IsSortedFunc(got, Compare))
}
