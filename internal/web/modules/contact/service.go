package contact

import (
	"context"
	"strings"

	"github.com/louisbranch/reclaim.space/internal/backend"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
	"github.com/louisbranch/reclaim.space/internal/web/platform/formfield"
)

// messageDraft is the raw contact submission before validation.
type messageDraft struct {
	Body        string
	SenderName  string
	SenderEmail string
	SenderPhone string
	// Honeypot is the hidden trap field; any content marks the submission
	// as automated.
	Honeypot string
}

type service struct {
	messages backend.MessageClient
}

func newService(messages backend.MessageClient) service {
	return service{messages: messages}
}

// relay validates a contact submission locally and forwards it once.
//
// A tripped honeypot returns nil without touching the gateway: an automated
// submitter must see the same outcome as a successful send. Validation
// failures never reach the network. There is no retry; resubmission is the
// sender's decision.
func (s service) relay(ctx context.Context, locator string, draft messageDraft) error {
	if strings.TrimSpace(draft.Honeypot) != "" {
		return nil
	}
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return apperrors.E(apperrors.KindNotFound, "Item not found.")
	}
	msg, err := validateDraft(locator, draft)
	if err != nil {
		return err
	}
	if s.messages == nil {
		return apperrors.E(apperrors.KindUnavailable, "Could not send your message. Please try again.")
	}
	if err := s.messages.Relay(ctx, msg); err != nil {
		return apperrors.FromBackend(err, "Could not send your message. Please try again.")
	}
	return nil
}

func validateDraft(locator string, draft messageDraft) (backend.Message, error) {
	body := formfield.Normalize(draft.Body)
	if body == "" {
		return backend.Message{}, apperrors.E(apperrors.KindInvalidInput, "A message is required.")
	}
	if !formfield.ValidMessageBody(body) {
		return backend.Message{}, apperrors.E(apperrors.KindInvalidInput, "Message must be 500 characters or fewer.")
	}
	email := formfield.Normalize(draft.SenderEmail)
	if email != "" && !formfield.ValidEmail(email) {
		return backend.Message{}, apperrors.E(apperrors.KindInvalidInput, "Enter a valid email address.")
	}
	phone := formfield.Normalize(draft.SenderPhone)
	if phone != "" && !formfield.ValidPhone(phone) {
		return backend.Message{}, apperrors.E(apperrors.KindInvalidInput, "Enter a valid phone number.")
	}
	return backend.Message{
		Locator:     locator,
		Body:        body,
		SenderName:  formfield.Normalize(draft.SenderName),
		SenderEmail: email,
		SenderPhone: phone,
	}, nil
}
