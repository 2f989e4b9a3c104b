package routepath

import "testing"

func TestItemEscapesLocator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		locator string
		want    string
	}{
		{name: "plain", locator: "abc123", want: "/item/abc123"},
		{name: "trims whitespace", locator: "  abc123  ", want: "/item/abc123"},
		{name: "escapes spaces", locator: "a b", want: "/item/a%20b"},
		{name: "escapes slash", locator: "a/b", want: "/item/a%2Fb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Item(tc.locator); got != tc.want {
				t.Fatalf("Item(%q) = %q, want %q", tc.locator, got, tc.want)
			}
		})
	}
}

func TestFoundEscapesLocator(t *testing.T) {
	t.Parallel()

	if got := Found("x y"); got != "/found/x%20y" {
		t.Fatalf("Found = %q, want %q", got, "/found/x%20y")
	}
}
