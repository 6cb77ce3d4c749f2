package orchestrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandevgo/eventdash/internal/core"
)

const defaultQuestion = "Please summarize this event for me"

const promptTemplate = `
You are a procurement domain expert and business analyst. I will pass you a JSON object containing three sections: "task", "workspace", and "rfx", which describe a SAP Ariba sourcing event.

Your goal is to extract the most useful, actionable information for a non-technical stakeholder. Structure your response with clear headings and bullet lists, not long paragraphs.

1. **Event Overview**
   - Title, Task ID, Status, Display Status
   - Open Date -> Close Date (convert epoch to human-readable)
   - Baseline Spend vs. Total Spend for Approval

2. **Key Participants & Roles**
   - Task Owner
   - Original Owner (group)
   - List of Approvers

3. **Custom Attributes & Configuration**
   - List each non-empty customFields value
   - Highlight any empty fields (e.g. arb_PaymentTerms)

4. **Document & Workspace Context**
   - Workspace Title and Entity Type
   - RFX Document Title and Entity Type
   - Regions and Organization involved

5. **Workflow & History Highlights**
   - Summarize the last three significant history actions (date, user, action)

6. **Top Line-Item Snapshot**
   - List first 3 items with quantity, unit price, total price; or note "No line-items present"

7. **Insights & Recommendations**
   - Identify missing data or configuration gaps
   - Call out potential risks (e.g. pending approvals)
   - Suggest next steps

Use headings and bullet lists, no long paragraphs.

JSON Data:
` + "```json\n%s\n```" + `

Conversation so far:
%s

User Question: %s
`

// BuildPrompt renders the full instructional prompt: the aggregate as
// pretty-printed JSON, the conversation so far, and the user's
// question (or the default summary request).
func BuildPrompt(data core.EventAggregate, history []core.ChatTurn, question string) (string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal aggregate: %w", err)
	}

	if question == "" {
		question = defaultQuestion
	}

	return fmt.Sprintf(promptTemplate, raw, renderConversation(history), question), nil
}

// renderConversation turns the history into sender-prefixed lines in
// original order. An empty history renders as an empty string.
func renderConversation(history []core.ChatTurn) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		who := "AI"
		if turn.Sender == core.SenderUser {
			who = "User"
		}
		lines = append(lines, who+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}
