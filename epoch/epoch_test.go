package epoch

import "testing"

func TestIndexBoundaries(t *testing.T) {
	cases := []struct {
		height int64
		want   int64
	}{
		{-5, 0},
		{0, 0},
		{1, 0},
		{10080, 0},
		{10081, 1},
		{20160, 1},
		{20161, 2},
	}
	for _, c := range cases {
		if got := Index(c.height); got != c.want {
			t.Errorf("Index(%d) = %d, want %d", c.height, got, c.want)
		}
	}
}

func TestMetaBounds(t *testing.T) {
	b := Meta(0)
	if b.StartHeight != 1 || b.EndHeight != 10080 {
		t.Errorf("Meta(0) = %+v, want {1 10080}", b)
	}
	b = Meta(1)
	if b.StartHeight != 10081 || b.EndHeight != 20160 {
		t.Errorf("Meta(1) = %+v, want {10081 20160}", b)
	}
}
