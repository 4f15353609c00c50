package llm

import (
	"fmt"
	"strings"
)

const chatSystemInstructions = "You are a compassionate and wise Bible teacher. " +
	"You explain scripture in simple, warm language that anyone can follow."

// InstructPrompt is the instruction formatted prompt sent to local
// completion models.
func InstructPrompt(verse string) string {
	return "[INST]You are a kind and wise Bible teacher. Read the verse below and explain it clearly. " +
		"Include a practical example and highlight the moral lessons.\n\n" +
		fmt.Sprintf("BIBLE VERSE:\n\"%s\"\n\n", verse) +
		"EXPLANATION:[/INST]"
}

// ChatPrompt is the user message sent to chat completion backends.
func ChatPrompt(verse string) string {
	return "Explain the following Bible verse like a compassionate teacher. " +
		"Include a real-life example and a moral lesson.\n\n" +
		fmt.Sprintf("BIBLE VERSE:\n\"%s\"", verse)
}

// stripEcho removes every copy of prompt from a generated text. Completion
// servers configured to echo return prompt and continuation concatenated.
func stripEcho(prompt, text string) string {
	if prompt != "" {
		text = strings.ReplaceAll(text, prompt, "")
	}
	return strings.TrimSpace(text)
}
