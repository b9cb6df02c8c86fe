package bot

import (
	"fmt"
	"strconv"

	"github.com/sspletnik/gossipbot/internal/telegram"
)

// Static reply keyboards: convenience shortcuts, not part of the callback
// protocol.
func exitKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.ReplyKeyboard([]string{cmdExit})
}

func skipKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.ReplyKeyboard([]string{cmdSkip, cmdExit})
}

func startKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.ReplyKeyboard([]string{cmdStart})
}

func welcomeKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{{
			{Text: btnFind, CallbackData: string(CmdStartFind)},
			{Text: btnSubmit, CallbackData: string(CmdStartSubmit)},
		}},
	}
}

func cityKeyboard(cities []string) *telegram.InlineKeyboardMarkup {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(cities))
	for _, city := range cities {
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         city,
			CallbackData: fmt.Sprintf("%s:%s", CmdSelectCity, city),
		}})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

const ageButtonsPerRow = 4

func ageKeyboard(ages []int) *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	var row []telegram.InlineKeyboardButton
	for _, age := range ages {
		row = append(row, telegram.InlineKeyboardButton{
			Text:         strconv.Itoa(age),
			CallbackData: fmt.Sprintf("%s:%d", CmdSelectAge, age),
		})
		if len(row) == ageButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}
