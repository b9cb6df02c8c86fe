package bot

import (
	"fmt"
	"strings"
	"testing"
)

func TestPaginate_PageCountAndSizes(t *testing.T) {
	cases := []struct {
		items    int
		pageSize int
		pages    int
		lastSize int
	}{
		{1, 5, 1, 1},
		{5, 5, 1, 5},
		{6, 5, 2, 1},
		{10, 5, 2, 5},
		{11, 5, 3, 1},
		{3, 1, 3, 1},
	}

	for _, tc := range cases {
		items := make([]string, tc.items)
		for i := range items {
			items[i] = fmt.Sprintf("rumor %d", i)
		}

		pages := paginate(items, tc.pageSize)
		if len(pages) != tc.pages {
			t.Errorf("items=%d size=%d: expected %d pages, got %d", tc.items, tc.pageSize, tc.pages, len(pages))
			continue
		}
		for i, page := range pages {
			want := tc.pageSize
			if i == len(pages)-1 {
				want = tc.lastSize
			}
			if got := strings.Count(page, rumorPrefix); got != want {
				t.Errorf("items=%d size=%d page=%d: expected %d entries, got %d", tc.items, tc.pageSize, i, want, got)
			}
		}
	}
}

func TestPaginate_EmptyInputYieldsOneEmptyPage(t *testing.T) {
	pages := paginate(nil, 5)
	if len(pages) != 1 {
		t.Fatalf("expected exactly one page, got %d", len(pages))
	}
	if pages[0] != "" {
		t.Fatalf("expected empty page, got %q", pages[0])
	}
}

func TestPaginate_OrderPreservedWithinAndAcrossPages(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	pages := paginate(items, 2)

	joined := strings.Join(pages, "\n\n")
	last := -1
	for _, item := range items {
		idx := strings.Index(joined, rumorPrefix+item)
		if idx <= last {
			t.Fatalf("item %q out of order in %q", item, joined)
		}
		last = idx
	}
}

func TestPageKeyboard_Bounds(t *testing.T) {
	// Single page: no controls at all.
	if kb := pageKeyboard(1, 0); kb != nil {
		t.Fatalf("expected nil keyboard for one page, got %+v", kb)
	}

	// First page of three: only "next".
	kb := pageKeyboard(3, 0)
	if kb == nil || len(kb.InlineKeyboard) != 1 || len(kb.InlineKeyboard[0]) != 1 {
		t.Fatalf("unexpected keyboard: %+v", kb)
	}
	if kb.InlineKeyboard[0][0].CallbackData != "page:1" {
		t.Fatalf("expected page:1, got %q", kb.InlineKeyboard[0][0].CallbackData)
	}

	// Middle page: both.
	kb = pageKeyboard(3, 1)
	if len(kb.InlineKeyboard[0]) != 2 {
		t.Fatalf("expected prev+next, got %+v", kb)
	}
	if kb.InlineKeyboard[0][0].CallbackData != "page:0" || kb.InlineKeyboard[0][1].CallbackData != "page:2" {
		t.Fatalf("unexpected targets: %+v", kb.InlineKeyboard[0])
	}

	// Last page: only "previous".
	kb = pageKeyboard(3, 2)
	if len(kb.InlineKeyboard[0]) != 1 || kb.InlineKeyboard[0][0].CallbackData != "page:1" {
		t.Fatalf("unexpected keyboard on last page: %+v", kb)
	}
}
