package dialog

import (
	"fmt"
	"strings"

	"github.com/Aliya0322/telegram-bot/internal/domain"
)

// Prompt builders. Pure functions from collected scratch fields to the
// system/user pair for one model turn.

const spellCheckSystemPrompt = "You are an English teacher and an assistant for checking English spelling. " +
	"Correct the mistakes in the user's text and briefly explain the changes. " +
	"Send the answer in the format: <b>Corrected text:</b>, <b>Mistakes:</b> " +
	"Explain the mistakes in simple language. " +
	"You can only correct mistakes in English. " +
	"Keep a respectful, friendly and encouraging style."

const essaySystemPrompt = "You are an expert in writing essays in English. Create a detailed essay plan in English based on the user's topic. " +
	"The plan must include three sections: <b>Introduction</b>, <b>Main Body</b>, and <b>Conclusion</b>. " +
	"Each section should contain 2-3 key points or ideas. " +
	"Write the plan in English and use clear, structured language. " +
	"Here is the user's topic: %s"

// SpellCheckPrompt builds the turn for the spelling-correction flow.
func SpellCheckPrompt(text string) domain.PromptSpec {
	return domain.PromptSpec{
		System: spellCheckSystemPrompt,
		User:   text,
	}
}

// EmailPrompt builds the turn for the email-drafting flow. details is the
// normalized additional-details field: when empty, no additional-details
// clause is appended. message is the raw final user message, passed through
// as the user content unchanged.
func EmailPrompt(topic, tone, details, message string) domain.PromptSpec {
	system := fmt.Sprintf(
		"You are an English teacher and a professional assistant for writing e-mails. "+
			"Write a %s letter in English on the topic '%s'. "+
			"Make sure it sounds professional and natural.",
		strings.ToLower(tone), topic,
	)

	if details != "" {
		system += fmt.Sprintf(" Additional wishes: %s.", details)
	}

	return domain.PromptSpec{
		System: system,
		User:   message,
	}
}

// EssayPrompt builds the turn for the essay-outline flow.
func EssayPrompt(topic string) domain.PromptSpec {
	return domain.PromptSpec{
		System: fmt.Sprintf(essaySystemPrompt, topic),
		User:   topic,
	}
}
