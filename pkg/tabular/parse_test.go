package tabular

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Row
	}{
		{
			name: "simple",
			text: "id,brand\nbb54,Tudor\n",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "no trailing newline",
			text: "id,brand\nbb54,Tudor",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "crlf line endings",
			text: "id,brand\r\nbb54,Tudor\r\nspeedy,Omega\r\n",
			want: []Row{
				{"id": "bb54", "brand": "Tudor"},
				{"id": "speedy", "brand": "Omega"},
			},
		},
		{
			name: "lone carriage return",
			text: "id,brand\rbb54,Tudor",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "quoted comma and doubled quote",
			text: "id,model\nx,\"12,\"\"inch\"\"\"\n",
			want: []Row{{"id": "x", "model": `12,"inch"`}},
		},
		{
			name: "quoted newline",
			text: "id,model\nx,\"line one\nline two\"\n",
			want: []Row{{"id": "x", "model": "line one\nline two"}},
		},
		{
			name: "blank lines dropped",
			text: "id,brand\n\nbb54,Tudor\n\n\n",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "missing trailing fields are empty",
			text: "id,brand,model\nbb54,Tudor\n",
			want: []Row{{"id": "bb54", "brand": "Tudor", "model": ""}},
		},
		{
			name: "extra fields ignored",
			text: "id,brand\nbb54,Tudor,extra\n",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "header and values trimmed",
			text: " id , brand \n bb54 ,  Tudor \n",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "unterminated quote consumes rest",
			text: "id,model\nx,\"open field,\nnext,row\n",
			want: []Row{{"id": "x", "model": "open field,\nnext,row"}},
		},
		{
			name: "single field rows dropped",
			text: "id,brand\nlonely\nbb54,Tudor\n",
			want: []Row{{"id": "bb54", "brand": "Tudor"}},
		},
		{
			name: "header only",
			text: "id,brand\n",
			want: []Row{},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	header := []string{"id", "brand", "model", "l2l_mm", "diameter_mm"}
	rows := [][]string{
		{"explorer2-226570", "Rolex", "Explorer II (226570)", "50", "42"},
		{"speedy-pro", "Omega", "Speedmaster Professional", "48.5", "42"},
		{"santos-medium", "Cartier", "Santos Medium", "42", "35"},
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ","))
		b.WriteString("\n")
	}

	got := Parse(b.String())
	if len(got) != len(rows) {
		t.Fatalf("Parse() returned %d rows, want %d", len(got), len(rows))
	}
	for i, r := range rows {
		for j, h := range header {
			if got[i][h] != r[j] {
				t.Errorf("row %d field %q = %q, want %q", i, h, got[i][h], r[j])
			}
		}
	}
}

func TestParseTableHeaderOrder(t *testing.T) {
	tbl := ParseTable("b,a,c\n1,2,3\n")
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(tbl.Header, want) {
		t.Errorf("Header = %v, want %v", tbl.Header, want)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("Rows = %d, want 1", len(tbl.Rows))
	}
}

func TestRowLookup(t *testing.T) {
	r := Row{"l2l_mm": "", "lug_to_lug_mm": "  ", "lug_to_lug": "47"}

	if v, ok := r.Lookup("l2l_mm", "lug_to_lug_mm", "lug_to_lug"); !ok || v != "47" {
		t.Errorf("Lookup() = %q, %v; want %q, true", v, ok, "47")
	}
	if _, ok := r.Lookup("diameter_mm", "diameter"); ok {
		t.Error("Lookup() reported a value for missing keys")
	}
	if _, ok := r.Lookup(); ok {
		t.Error("Lookup() with no keys reported a value")
	}
}
