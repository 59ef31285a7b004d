package dbquery

import "testing"

func TestContainsFoldEscapesWildcards(t *testing.T) {
	t.Parallel()
	expr, arg := ContainsFold("title", "100%_Calm")
	if expr != `LOWER(title) LIKE ? ESCAPE '\'` {
		t.Fatalf("expr=%s", expr)
	}
	if arg != `%100\%\_calm%` {
		t.Fatalf("arg=%v", arg)
	}
}

func TestPage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		page, limit              int
		wantPage, wantLimit, off int
	}{
		{0, 0, 1, 10, 0},
		{3, 10, 3, 10, 20},
		{2, 500, 2, 50, 50},
		{-4, 5, 1, 5, 0},
	}
	for _, tc := range cases {
		p, l, off := Page(tc.page, tc.limit, 10, 50)
		if p != tc.wantPage || l != tc.wantLimit || off != tc.off {
			t.Errorf("Page(%d,%d)=%d,%d,%d", tc.page, tc.limit, p, l, off)
		}
	}
}
