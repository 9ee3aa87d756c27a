package cpu

import "testing"

func TestAddressToPage(t *testing.T) {
	cases := []struct {
		address  int
		pageSize int
		expected int
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{319, 10, 31},
		{320, 10, 32},
		{100, 25, 4},
	}

	for _, c := range cases {
		page := AddressToPage(c.address, c.pageSize)
		if page != c.expected {
			t.Errorf("Expected page %d for address %d with page size %d, got %d",
				c.expected, c.address, c.pageSize, page)
		}
	}
}

func TestAddressesToPages(t *testing.T) {
	pages := AddressesToPages([]int{0, 9, 10, 25}, 10)

	expected := []int{0, 0, 1, 2}
	if len(pages) != len(expected) {
		t.Fatalf("Expected %d pages, got %d", len(expected), len(pages))
	}
	for i := range expected {
		if pages[i] != expected[i] {
			t.Errorf("Expected page %d at position %d, got %d", expected[i], i, pages[i])
		}
	}
}
