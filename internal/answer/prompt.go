package answer

import (
	"fmt"
	"strings"

	"github.com/sells-group/bizintel/internal/model"
)

// systemPrompt frames every LLM request. It is identical across requests,
// which makes it a natural prompt-cache breakpoint.
const systemPrompt = "You are a senior business intelligence consultant. " +
	"You analyze businesses from the information collected on their websites " +
	"and answer questions precisely and professionally."

const promptRules = `Rules:
- Answer using only the information provided above.
- Do not fabricate facts, figures, or contact details.
- If the information is insufficient to answer, say so and explain what is missing.`

// noneFound marks an empty contact list in the prompt so the model is not
// tempted to invent entries.
const noneFound = "None found"

// buildPrompt assembles the single user message sent to the model: the
// profile fields, the verbatim question, and the no-fabrication rules.
func buildPrompt(profile *model.BusinessProfile, question string) string {
	return fmt.Sprintf(`Business profile scraped from the company website:

Name: %s
Description: %s
Email addresses: %s
Phone numbers: %s

Question: %s

%s`,
		profile.Name,
		profile.Description,
		joinOrNone(profile.Emails),
		joinOrNone(profile.Phones),
		question,
		promptRules,
	)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return noneFound
	}
	return strings.Join(items, ", ")
}
