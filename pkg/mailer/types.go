package mailer

import "context"

// Message is a single transactional email
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

func (m Message) Validate() error {
	if m.From == "" || len(m.To) == 0 || m.Subject == "" {
		return ErrInvalidMessage
	}
	for _, to := range m.To {
		if to == "" {
			return ErrInvalidMessage
		}
	}
	return nil
}

// Sender delivers a message and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
