package diff

import (
	"reflect"
	"testing"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		name       string
		original   string
		refactored string
		want       []string
	}{
		{
			name:       "identical",
			original:   "def f():\n    pass\n",
			refactored: "def f():\n    pass\n",
			want:       []string{"no significant changes detected"},
		},
		{
			name:       "docstrings added",
			original:   "def f():\n    pass\n",
			refactored: "def f():\n    \"\"\"Do nothing.\"\"\"\n    pass\n",
			want:       []string{"line count changed", "added docstrings"},
		},
		{
			name:       "type hints added same length",
			original:   "def f(x):\n    return x\n",
			refactored: "def f(x: int) -> int:\n    return x\n",
			want:       []string{"added type hints"},
		},
		{
			name:       "marker already present",
			original:   "def f():\n    \"\"\"Doc.\"\"\"\n",
			refactored: "def f():\n    \"\"\"Better doc.\"\"\"\n",
			want:       []string{"no significant changes detected"},
		},
		{
			name:       "only line count",
			original:   "x = 1\n",
			refactored: "x = 1\ny = 2\n",
			want:       []string{"line count changed"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.original, tc.refactored)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Summarize() = %v, want %v", got, tc.want)
			}
		})
	}
}
