package generator

import "fmt"

// Prompt templates sent to the LLM backend. Wording is deliberately
// tight: short outputs keep token usage low and the layouts readable.

func summaryPrompt(raw string) string {
	return fmt.Sprintf("Improve the following resume summary to be concise, professional, under 50 words:\n\n%s", raw)
}

func experiencePrompt(title, company string) string {
	return fmt.Sprintf("Write 3 concise bullets (<=18 words, no percentage signs) for a %s at %s.", title, company)
}

func projectPrompt(title string) string {
	return fmt.Sprintf("Write 3 concise accomplishments (<=18 words, no percentage signs) for project '%s'. Start with a verb.", title)
}
