package handler

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{"casual", []string{"casual"}},
		{"casual, summer , work", []string{"casual", "summer", "work"}},
		{" , ,", []string{}},
		{"a,,b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		if got := splitTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
