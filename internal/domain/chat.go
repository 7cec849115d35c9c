package domain

import (
	"strings"
	"time"
)

// ChatRole identifies who produced a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in an assistant conversation transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      ChatRole  `json:"role"`
	Message   string    `json:"message"`
	Topic     string    `json:"topic,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// chatRule maps keywords in a user message to a canned reply and a
// topic label for the transcript. First match wins.
type chatRule struct {
	keywords []string
	topic    string
	reply    string
}

var chatRules = []chatRule{
	{
		// Anything that smells like a medical question gets a refusal
		// before the friendlier topics get a chance to match.
		keywords: []string{"doctor", "medication", "prescription", "pregnan", "interact", "condition", "diagnos"},
		topic:    "medical",
		reply:    "I can't help with medical questions. Please talk to your doctor or pharmacist about medications, health conditions, or anything diagnosis-related.",
	},
	{
		keywords: []string{"how much", "how many", "dose", "dosing", "capsule", "mg"},
		topic:    "dosing",
		reply:    "Most people start with a single capsule and keep it there for at least a week before adjusting. Going low and slow is the whole idea of a micro-dose.",
	},
	{
		keywords: []string{"groggy", "side effect", "hangover", "heavy head", "dizzy"},
		topic:    "side-effects",
		reply:    "Morning grogginess usually means the evening dose was higher than needed. People often move to a lower-dose product or take it earlier in the evening.",
	},
	{
		keywords: []string{"sleep", "insomnia", "asleep", "wake up"},
		topic:    "sleep",
		reply:    "Our sleep products are usually taken about an hour before bed. Many people log how fast they fell asleep and whether they woke up during the night to see what works.",
	},
	{
		keywords: []string{"difference", "compare", "which product", "deep rest", "calm clarity", "focus crisp", "gentle relief"},
		topic:    "products",
		reply:    "The products differ mainly in THC per capsule and intended effect: Deep Rest for sleep, Calm Clarity for daytime calm, Focus Crisp for focus, and Gentle Relief for mild discomfort.",
	},
}

// defaultChatReply is the safe fallback when no rule matches.
const defaultChatReply = "I'm a prototype ClarityRx assistant. I can help explain how products differ and how people generally use them, but I can't give medical advice. Please talk to your doctor for questions about specific medications or conditions."

// Reply runs the keyword rules over a user message and returns the
// canned reply plus a topic label. Deterministic, no state.
func Reply(message string) (reply, topic string) {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply, rule.topic
			}
		}
	}
	return defaultChatReply, "general"
}
