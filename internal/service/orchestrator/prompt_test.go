package orchestrator

import (
	"strings"
	"testing"

	"github.com/sandevgo/eventdash/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregate() core.EventAggregate {
	return core.EventAggregate{
		Task:      core.Resource{"workspaceId": "W-1"},
		Workspace: core.Resource{"rfxDocumentId": "R-1"},
		RFX:       core.Resource{"title": "Laptops RFX"},
	}
}

func TestBuildPrompt_EmptyHistory(t *testing.T) {
	got, err := BuildPrompt(sampleAggregate(), nil, "")
	require.NoError(t, err)

	// Empty history renders as an empty conversation block
	assert.Contains(t, got, "Conversation so far:\n\n")
	// Empty prompt falls back to the summary request
	assert.Contains(t, got, "User Question: Please summarize this event for me")
}

func TestBuildPrompt_HistoryOrderAndPrefixes(t *testing.T) {
	history := []core.ChatTurn{
		{Sender: core.SenderUser, Text: "who owns this event?"},
		{Sender: core.SenderAI, Text: "The task owner is J. Doe."},
		{Sender: core.SenderUser, Text: "and the close date?"},
	}

	got, err := BuildPrompt(sampleAggregate(), history, "thanks")
	require.NoError(t, err)

	want := "User: who owns this event?\nAI: The task owner is J. Doe.\nUser: and the close date?"
	assert.Contains(t, got, want)

	// Exactly N sender-prefixed lines in the conversation block
	block := renderConversation(history)
	assert.Len(t, strings.Split(block, "\n"), 3)
}

func TestBuildPrompt_EmbedsAggregateJSON(t *testing.T) {
	got, err := BuildPrompt(sampleAggregate(), nil, "summarize")
	require.NoError(t, err)

	// Pretty-printed JSON inside a fenced block
	assert.Contains(t, got, "```json")
	assert.Contains(t, got, `"task": {`)
	assert.Contains(t, got, `"workspaceId": "W-1"`)
	assert.Contains(t, got, `"title": "Laptops RFX"`)
	assert.Contains(t, got, "User Question: summarize")
}

func TestBuildPrompt_FixedOutline(t *testing.T) {
	got, err := BuildPrompt(sampleAggregate(), nil, "")
	require.NoError(t, err)

	for _, section := range []string{
		"Event Overview",
		"Key Participants & Roles",
		"Custom Attributes & Configuration",
		"Document & Workspace Context",
		"Workflow & History Highlights",
		"Top Line-Item Snapshot",
		"Insights & Recommendations",
	} {
		assert.Contains(t, got, section)
	}
}

func TestRenderConversation_UnknownSenderIsAI(t *testing.T) {
	got := renderConversation([]core.ChatTurn{{Sender: "assistant", Text: "hi"}})
	assert.Equal(t, "AI: hi", got)
}
