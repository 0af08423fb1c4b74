package dialog

// Main menu labels. The transport renders these as reply-keyboard buttons,
// so an incoming message equal to a label is a menu selection.
const (
	MenuSpellCheck   = "Spell check 🖍"
	MenuWriteEmail   = "Write an e-mail 📩"
	MenuEssayPlan    = "Essay plan 🔍"
	MenuInviteFriend = "Invite a friend 🌟"
)

// Tone callback tokens and the labels recorded in scratch.
const (
	ToneOfficialToken = "tone_official"
	ToneFriendlyToken = "tone_friendly"

	ToneOfficial = "Official"
	ToneFriendly = "Friendly"
	ToneUnknown  = "Unknown"
)

// detailsNone is the sentinel for "no additional details". The comparison is
// case-insensitive equality with this single word, not a prefix match:
// "no thanks" counts as real detail text.
const detailsNone = "no"

const welcomeText = "Hello! 🇬🇧\n\nMy name is <b>Lingvo</b>, and I am your personal AI assistant for learning English.\n\n" +
	"I have gathered extensive knowledge by studying the best teaching methods.\n\n➡️ Every day I help " +
	"school students <b>improve their grades</b> and adult learners <b>succeed at work</b>.\n\n" +
	"With my help you can unlock your potential, grow your professional skills and do well in your studies. 🌟\n\n" +
	"<b>Choose a menu item to continue 👇🏻</b>"

const spellIntroText = "Glad to help!\n\nPlease send the text <b>in English</b> that you want checked for spelling.\n\n" +
	"I will correct the mistakes and explain the changes 👇🏻"

const emailIntroText = "Happy to help!\n\nPlease describe what you would like to say in the letter, " +
	"and I will write it <b>in English</b> for you.\n\n" +
	"Briefly describe its topic (for example, a letter to a university, a complaint, a business proposal, etc.) 👇🏻"

const toneQuestionText = "What tone should the letter have?\n\n" +
	"Pick one of the options or write your own 👇🏻"

const toneChosenText = "You picked the letter tone: <b>%s</b>\n\n" +
	"Would you like to add anything special to the letter? For example, key points, text length or the number of paragraphs?" +
	"\n\nIf nothing is needed, just write 'No'."

const essayIntroText = "Great!\n\nLet's build an essay plan.\n\nPlease write the topic of your essay 👇🏻"

const inviteText = "So glad you like it here!\n\n" +
	"Invite a friend with this link: https://t.me/myligvoacademy_bot 🌟"

const fallbackText = "I didn't understand you.\n\nPlease pick an item from the menu below 👇🏻"

const cancelText = "Okay, cancelled.\n\n<b>Choose a menu item to continue 👇🏻</b>"

const quotaExhaustedText = "You have used up today's request limit.\n\nPlease try again tomorrow. 👋🏻"

const remainingQuotaText = "You can make <b>%d more requests</b> today.\n\n" +
	"<b>Choose a menu item to continue 👇🏻</b>"

const tooLongText = "Your message is too long! Please shorten the text to %d characters."

const emptyReplyText = "Error: the model returned an empty reply."

const providerErrorText = "⚠️ An error occurred while contacting the model. Please try again later."
