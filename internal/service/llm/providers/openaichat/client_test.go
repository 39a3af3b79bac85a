package openaichat

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"

	agentModels "devforge/internal/domain/models/agent"
)

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "", "deepseek-chat"); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewClient("sk-test", "", ""); err == nil {
		t.Error("expected error for missing model")
	}
	if _, err := NewClient("sk-test", "", "deepseek-chat"); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestBuildMessagesOrder(t *testing.T) {
	client, err := NewClient("sk-test", "", "deepseek-chat")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	history := []agentModels.Turn{
		{Speaker: agentModels.SpeakerUser, Text: "first question"},
		{Speaker: agentModels.SpeakerAssistant, Text: "first answer"},
	}
	prompt := agentModels.PromptPair{System: "you are an analyst", User: "second question"}

	messages := client.buildMessages(prompt, history)
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}

	want := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: "first question"},
		{Role: openai.ChatMessageRoleAssistant, Content: "first answer"},
		{Role: openai.ChatMessageRoleSystem, Content: "you are an analyst"},
		{Role: openai.ChatMessageRoleUser, Content: "second question"},
	}
	for i, m := range want {
		if messages[i].Role != m.Role || messages[i].Content != m.Content {
			t.Errorf("message %d: expected %s/%q, got %s/%q",
				i, m.Role, m.Content, messages[i].Role, messages[i].Content)
		}
	}
}

func TestBuildMessagesWithoutHistory(t *testing.T) {
	client, err := NewClient("sk-test", "", "deepseek-chat")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	messages := client.buildMessages(agentModels.PromptPair{System: "s", User: "u"}, nil)
	if len(messages) != 2 {
		t.Fatalf("expected system and user messages only, got %d", len(messages))
	}
	if messages[0].Role != openai.ChatMessageRoleSystem || messages[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("unexpected roles: %s, %s", messages[0].Role, messages[1].Role)
	}
}
