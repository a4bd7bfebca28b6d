package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text",
			in:   "Nowa promocja",
			want: "Nowa promocja",
		},
		{
			name: "paragraph wrapper",
			in:   "<p>Gra za darmo na Steam</p>\n",
			want: "Gra za darmo na Steam",
		},
		{
			name: "entities decoded",
			in:   "Wied&#378;min 3 &#8211; promocja &amp; bonus",
			want: "Wiedźmin 3 – promocja & bonus",
		},
		{
			name: "nested markup joined with spaces",
			in:   "<div><b>Epic</b> rozdaje <a href='#'>kolejną grę</a></div>",
			want: "Epic rozdaje kolejną grę",
		},
		{
			name: "whitespace collapsed",
			in:   "<p>za\n\t darmo   dzisiaj</p>",
			want: "za darmo dzisiaj",
		},
		{
			name: "script dropped",
			in:   "<p>widoczne</p><script>var x = 1;</script>",
			want: "widoczne",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}
