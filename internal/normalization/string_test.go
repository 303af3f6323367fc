package normalization

import "testing"

func TestParseInputString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Anders@Nordic.Example  ", "anders@nordic.example"},
		{"ALREADY", "already"},
		{"", ""},
		{"  \t ", ""},
	}
	for _, tc := range cases {
		if got := ParseInputString(tc.in); got != tc.want {
			t.Fatalf("ParseInputString(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestParseInputStringPtr(t *testing.T) {
	if got := ParseInputStringPtr(nil); got != nil {
		t.Fatalf("nil in must stay nil, got=%v", got)
	}
	in := "  MiXeD  "
	got := ParseInputStringPtr(&in)
	if got == nil || *got != "mixed" {
		t.Fatalf("want=mixed got=%v", got)
	}
}
