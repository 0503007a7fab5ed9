package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/LenatThomas/Resume-Handler/internal/models"
)

// Apology is the fixed fallback reply when the chat model cannot produce one.
const Apology = "Apologies, I'm having some trouble responding right now."

// Responder turns a user message and an optional resume status into a reply.
// It keeps one multi-turn chat session per sender, seeded with the persona
// instruction; idle sessions expire and long histories are truncated.
type Responder interface {
	Reply(ctx context.Context, sender, message string, status *models.Status) string
}

type chatSession struct {
	chat     *genai.Chat
	lastSeen time.Time
}

type responder struct {
	client     *genai.Client
	modelName  string
	prompts    *PromptBuilder
	sessionTTL time.Duration
	maxTurns   int
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*chatSession
}

func NewResponder(client *genai.Client, modelName string, sessionTTL time.Duration, maxTurns int) Responder {
	return &responder{
		client:     client,
		modelName:  modelName,
		prompts:    NewPromptBuilder(),
		sessionTTL: sessionTTL,
		maxTurns:   maxTurns,
		now:        time.Now,
		sessions:   make(map[string]*chatSession),
	}
}

// Reply implements Responder. Any failure degrades to the fixed apology so
// the webhook layer always has something to send back.
func (r *responder) Reply(ctx context.Context, sender, message string, status *models.Status) string {
	session, err := r.session(ctx, sender)
	if err != nil {
		log.Printf("❌ Failed to open chat session for %s: %v", sender, err)
		return Apology
	}

	statusText := ""
	if status != nil {
		statusText = status.Render()
	}
	prompt := r.prompts.BuildChatPrompt(message, statusText)

	resp, err := session.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		log.Printf("❌ Chat generation failed for %s: %v", sender, err)
		return Apology
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		log.Printf("❌ Empty chat response for %s", sender)
		return Apology
	}

	return reply
}

// session returns the sender's chat session, evicting sessions idle past the
// TTL and recreating any session whose history grew past the cap.
func (r *responder) session(ctx context.Context, sender string) (*chatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.sessionTTL {
			delete(r.sessions, key)
		}
	}

	s, ok := r.sessions[sender]
	if !ok {
		chat, err := r.newChat(ctx, nil)
		if err != nil {
			return nil, err
		}
		s = &chatSession{chat: chat}
		r.sessions[sender] = s
	} else if history := s.chat.History(false); len(history) > r.maxTurns*2 {
		// Drop the oldest turns so history stays bounded. A turn is a
		// user/model content pair.
		chat, err := r.newChat(ctx, history[len(history)-r.maxTurns*2:])
		if err == nil {
			s.chat = chat
		}
	}

	s.lastSeen = now
	return s, nil
}

func (r *responder) newChat(ctx context.Context, history []*genai.Content) (*genai.Chat, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(r.prompts.PersonaInstruction(), genai.RoleUser),
	}
	return r.client.Chats.Create(ctx, r.modelName, config, history)
}
