package sqltemplate

import "testing"

func TestNormalizeQuotes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a = `x`", "a = 'x'"},
		{"a=`x`", "a='x'"},
		{"a =\n\t`x y`", "a =\n\t'x y'"},
		{"SELECT `a`, `b` FROM `t`", "SELECT `a`, `b` FROM `t`"},
		{"`a` = `b`, `c` = 1", "`a` = 'b', `c` = 1"},
		{"a = ``", "a = ''"},
		{"a = 'x'", "a = 'x'"},
	}
	for _, tt := range tests {
		if got := NormalizeQuotes(tt.in); got != tt.want {
			t.Errorf("NormalizeQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeQuotesIdempotent(t *testing.T) {
	once := NormalizeQuotes("UPDATE t SET `a` = `x`, `b` = `y`")
	if twice := NormalizeQuotes(once); twice != once {
		t.Fatalf("second pass changed output: %q -> %q", once, twice)
	}
}
