package contentsvc

import (
	"testing"
)

func TestDefaultCategories(t *testing.T) {
	if len(defaultCategories) != 9 {
		t.Fatalf("số danh mục mặc định = %d, muốn 9", len(defaultCategories))
	}

	seen := make(map[string]bool)
	for _, c := range defaultCategories {
		if c.Name == "" || c.Icon == "" || c.Description == "" {
			t.Errorf("danh mục mặc định thiếu field: %+v", c)
		}
		if seen[c.Name] {
			t.Errorf("tên danh mục trùng lặp: %q", c.Name)
		}
		seen[c.Name] = true
	}
}
