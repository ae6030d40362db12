package handler

import "testing"

func TestAllowedFileType(t *testing.T) {
	const allowList = "image/jpeg,image/jpg,image/png,image/webp"

	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"jpeg", "image/jpeg", true},
		{"png", "image/png", true},
		{"webp", "image/webp", true},
		{"empty content type", "", false},
		{"substring of an allowed type", "jpeg", false},
		{"prefix of an allowed type", "image/jp", false},
		{"gif", "image/gif", false},
		{"svg", "image/svg+xml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allowedFileType(allowList, tt.contentType); got != tt.want {
				t.Errorf("allowedFileType(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestAllowedFileType_ListWithSpaces(t *testing.T) {
	if !allowedFileType("image/jpeg, image/png", "image/png") {
		t.Error("types after a space in the list must still match")
	}
}
