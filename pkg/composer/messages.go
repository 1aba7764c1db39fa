package composer

import (
	"time"

	"github.com/google/uuid"

	"github.com/NethermindEth/lovenotes/pkg/composer/keepsake"
	"github.com/NethermindEth/lovenotes/pkg/composer/phrasebook"
)

type Generator string

const (
	GeneratorTemplate Generator = "template"
	GeneratorModel    Generator = "model"
)

type Message struct {
	ID          string                 `json:"id"`
	Generator   Generator              `json:"generator"`
	ContentType phrasebook.ContentType `json:"content_type,omitempty"`
	Prompt      string                 `json:"prompt,omitempty"`
	Text        string                 `json:"text"`
	CreatedAt   time.Time              `json:"created_at"`
}

func newMessage(generator Generator, text string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Generator: generator,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

func (m *Message) keepsake() keepsake.Keepsake {
	title := string(m.ContentType)
	if m.Generator == GeneratorModel {
		title = m.Prompt
	}

	return keepsake.Keepsake{
		ID:        m.ID,
		Title:     title,
		Generator: string(m.Generator),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func (c *Composer) storeMessage(message *Message) {
	c.messages.Add(message.ID, *message)
}

// Message returns a recently generated message. Messages expire after the
// configured TTL or when evicted by newer ones.
func (c *Composer) Message(id string) (*Message, error) {
	message, ok := c.messages.Get(id)
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &message, nil
}
