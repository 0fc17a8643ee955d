package kpath

import (
	"errors"
	"reflect"
	"testing"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParseKPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *KPath
		wantErr bool
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "simple key",
			input: "a",
			want:  &KPath{Field: stringPtr("a")},
		},
		{
			name:  "nested keys",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "key with index",
			input: "server.hosts[0].name",
			want: &KPath{
				Field: stringPtr("server"),
				Next: &KPath{
					Field: stringPtr("hosts"),
					Next: &KPath{
						Index: intPtr(0),
						Next:  &KPath{Field: stringPtr("name")},
					},
				},
			},
		},
		{
			name:  "leading index",
			input: "[2]",
			want:  &KPath{Index: intPtr(2)},
		},
		{
			name:  "index only segment",
			input: "a.[1][3]",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Index: intPtr(1),
					Next:  &KPath{Index: intPtr(3)},
				},
			},
		},
		{
			name:  "quoted key",
			input: `labels."app.io/name".x`,
			want: &KPath{
				Field: stringPtr("labels"),
				Next: &KPath{
					Field: stringPtr("app.io/name"),
					Next:  &KPath{Field: stringPtr("x")},
				},
			},
		},
		{
			name:  "quoted key escapes",
			input: `"a\"b\\c"`,
			want:  &KPath{Field: stringPtr(`a"b\c`)},
		},
		{name: "leading dot", input: ".a", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "empty segment", input: "a..b", wantErr: true},
		{name: "unclosed bracket", input: "a[1", wantErr: true},
		{name: "unopened bracket", input: "a]", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "non-numeric index", input: "a[x]", wantErr: true},
		{name: "empty index", input: "a[]", wantErr: true},
		{name: "junk after index", input: "a[0]b", wantErr: true},
		{name: "unterminated quote", input: `"abc`, wantErr: true},
		{name: "huge index", input: "a[99999999999999999999]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("error %v does not wrap ErrSyntax", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKPath_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "a"},
		{"a.b[0].c", "a.b[0].c"},
		{"a.[1]", "a[1]"},
		{"[0][1]", "[0][1]"},
		{`"a b".c`, `"a b".c`},
		{`"x.y"`, `"x.y"`},
		{`"@t"`, `"@t"`},
	}
	for _, tt := range tests {
		kp, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got := kp.String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
		}
		again, err := Parse(kp.String())
		if err != nil || !reflect.DeepEqual(again, kp) {
			t.Errorf("round trip of %q: %v %v", tt.input, again, err)
		}
	}
}

func TestKPath_Append_Parent(t *testing.T) {
	kp := MustParse("a.b")
	child := kp.Append(Index(2))
	if got := child.String(); got != "a.b[2]" {
		t.Errorf("Append: got %q", got)
	}
	if got := kp.String(); got != "a.b" {
		t.Errorf("Append modified receiver: %q", got)
	}
	if got := child.Parent().String(); got != "a.b" {
		t.Errorf("Parent: got %q", got)
	}
	if got := child.LastSegment().SegmentString(); got != "[2]" {
		t.Errorf("LastSegment: got %q", got)
	}
	if MustParse("a").Parent() != nil {
		t.Errorf("single segment parent should be nil")
	}
	var root *KPath
	if got := root.Append(Field("x")).String(); got != "x" {
		t.Errorf("nil Append: got %q", got)
	}
	if n := child.Len(); n != 3 {
		t.Errorf("Len: got %d", n)
	}
}

func TestKPath_Compare(t *testing.T) {
	order := []string{"", "[0]", "[1]", "a", "a[0]", "a.b", "b"}
	for i := range order {
		for j := range order {
			a, b := MustParse(order[i]), MustParse(order[j])
			got := a.Compare(b)
			switch {
			case i < j && got >= 0, i > j && got <= 0, i == j && got != 0:
				t.Errorf("Compare(%q, %q) = %d", order[i], order[j], got)
			}
		}
	}
}

func TestKPath_Text(t *testing.T) {
	kp := &KPath{}
	if err := kp.UnmarshalText([]byte("x[3]")); err != nil {
		t.Fatal(err)
	}
	d, _ := kp.MarshalText()
	if string(d) != "x[3]" {
		t.Errorf("got %q", d)
	}
	if err := kp.UnmarshalText([]byte("x[")); err == nil {
		t.Errorf("expected error")
	}
}
