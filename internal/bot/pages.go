package bot

import (
	"fmt"
	"strings"

	"github.com/sspletnik/gossipbot/internal/telegram"
)

// paginate splits rumor texts into rendered pages of up to pageSize entries,
// each entry prefixed and separated by a blank line. The result always has at
// least one page: the caller renders something even for an empty input.
func paginate(items []string, pageSize int) []string {
	if pageSize <= 0 {
		pageSize = 1
	}
	if len(items) == 0 {
		return []string{""}
	}

	pages := make([]string, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		lines := make([]string, 0, end-start)
		for _, item := range items[start:end] {
			lines = append(lines, rumorPrefix+item)
		}
		pages = append(pages, strings.Join(lines, "\n\n"))
	}
	return pages
}

// pageKeyboard builds the navigation controls for one page: "previous" is
// absent on the first page and "next" on the last. A single page has no
// keyboard at all.
func pageKeyboard(pageCount, index int) *telegram.InlineKeyboardMarkup {
	var row []telegram.InlineKeyboardButton
	if index > 0 {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         btnPrev,
			CallbackData: fmt.Sprintf("%s:%d", CmdSelectPage, index-1),
		})
	}
	if index < pageCount-1 {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         btnNext,
			CallbackData: fmt.Sprintf("%s:%d", CmdSelectPage, index+1),
		})
	}
	if len(row) == 0 {
		return nil
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
}
