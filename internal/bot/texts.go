package bot

import "fmt"

// Slash commands recognized from any state.
const (
	cmdStart = "/start"
	cmdExit  = "/exit"
	cmdSkip  = "/skip"
)

const (
	textWelcome = "Hi, I'm the Gossip bot. I collect, find and spread rumors (yes, the dirty ones too).\n\n" +
		"1. \"Find rumors\" — enter the name, surname and city of the person you want to read about. " +
		"If there is nothing, well, they are either a saint or terribly boring.\n\n" +
		"2. \"Spread a rumor\" — I know you have something to tell! Enter the name, surname, age and city " +
		"of the person you want to write anonymous gossip about. Let everyone know!\n\n" +
		"Don't forget to share me with your friends!"

	textAskName     = "Enter the first name (full, if possible):"
	textAskSurname  = "Enter the surname:"
	textAskUsername = "Enter their Telegram username, if they have one:"
	textAskAge      = "Enter the age:"
	textAskAgeAgain = "That does not look like an age. Enter a number:"
	textAskCity     = "Enter the city:"
	textAskRumor    = "Write down what you know about this person:"

	textChooseCity = "Choose a city:"
	textChooseAge  = "Choose an age:"

	textStartOver = "Start over?"
	textRumorHit  = "Someone just spread a rumor about you!"

	// Every rumor line on a result page starts with this.
	rumorPrefix = "People say: "

	btnFind   = "Find rumors"
	btnSubmit = "Spread a rumor"
	btnPrev   = "«"
	btnNext   = "»"
)

func textNoRumors(name, surname string) string {
	return fmt.Sprintf("Looks like no one has written anything about %s %s yet. Be the first!", name, surname)
}

func textRumorAdded(name, surname string) string {
	return fmt.Sprintf("The rumor about %s %s has been added!", name, surname)
}
