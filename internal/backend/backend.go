// Package backend defines the typed contract of the headless record API.
//
// Every persistence and auth operation of the web service is delegated to
// this external REST surface; the web service itself owns no storage beyond
// the device-scoped session store.
package backend

import "context"

// Subject is the minimal identity attached to an authenticated session.
type Subject struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Session pairs an opaque bearer credential with its resolved subject.
//
// The credential is never decoded client-side; it is only attached verbatim
// to authenticated backend calls.
type Session struct {
	Credential string  `json:"credential"`
	Subject    Subject `json:"subject"`
}

// Disposition is the found/missing status of an item record.
type Disposition string

const (
	DispositionFound   Disposition = "found"
	DispositionMissing Disposition = "missing"
)

// Valid reports whether the disposition is one of the known states.
func (d Disposition) Valid() bool {
	return d == DispositionFound || d == DispositionMissing
}

// Item is the public view of an item record.
//
// The record's internal numeric id never crosses this boundary; the public
// locator is the only identifier a non-owner may use to address the record.
// Owner contact fields carry whatever the backend chose to disclose.
type Item struct {
	Locator     string      `json:"publicLocator"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Disposition Disposition `json:"disposition"`
	Location    string      `json:"location,omitempty"`
	OwnerName   string      `json:"ownerName,omitempty"`
	OwnerPhone  string      `json:"ownerPhone,omitempty"`
	OwnerEmail  string      `json:"ownerEmail,omitempty"`
}

// ItemDraft carries the fields of a new item record submission.
//
// Optional fields are absent-if-blank: an empty string is never sent.
type ItemDraft struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Disposition Disposition `json:"disposition"`
	Location    string      `json:"location,omitempty"`
	Date        string      `json:"date,omitempty"`
	OwnerName   string      `json:"ownerName"`
	OwnerPhone  string      `json:"ownerPhone"`
	OwnerEmail  string      `json:"ownerEmail,omitempty"`
}

// Message is an anonymous contact submission addressed by public locator.
//
// Resolution from locator to the owning record happens server-side; the
// sender never learns the record's internal id or the owner's credential.
type Message struct {
	Locator     string `json:"publicLocator"`
	Body        string `json:"body"`
	SenderName  string `json:"senderDisplayName,omitempty"`
	SenderEmail string `json:"senderEmail,omitempty"`
	SenderPhone string `json:"senderPhone,omitempty"`
}

// AuthClient exposes the credential exchange operations of the backend.
type AuthClient interface {
	// Login exchanges identifier/password for a credential and subject.
	Login(ctx context.Context, identifier, password string) (Session, error)
	// Register creates an account and returns the resulting session.
	Register(ctx context.Context, username, email, password string) (Session, error)
	// Profile resolves the subject behind a credential.
	Profile(ctx context.Context, credential string) (Subject, error)
}

// ItemClient exposes item record operations of the backend.
type ItemClient interface {
	// ListOwned returns the records owned by the given subject, newest first.
	ListOwned(ctx context.Context, credential string, ownerID int64) ([]Item, error)
	// Create submits a new record for the owning subject and returns it,
	// including the backend-assigned public locator.
	Create(ctx context.Context, credential string, ownerID int64, draft ItemDraft) (Item, error)
	// GetByLocator resolves a public locator to its record view. No
	// credential is attached; disclosure policy is the backend's.
	GetByLocator(ctx context.Context, locator string) (Item, error)
}

// MessageClient exposes the anonymous contact relay operation.
type MessageClient interface {
	// Relay forwards a contact message for the record behind the locator.
	// No credential is attached; the caller is anonymous by design.
	Relay(ctx context.Context, msg Message) error
}
