package preview

import (
	"github.com/google/uuid"
	"go.trai.ch/mist/internal/core/ports"
)

// Session bundles an actor with the channels its peers talk through.
type Session struct {
	// ID identifies the session in log output.
	ID string
	// Actor must be run by the caller.
	Actor *Actor
	// Requests sends to the actor. Close it, and every clone, to stop the actor.
	Requests *Sender[Request]
	// Editor receives the jumps meant for the editor.
	Editor *Mailbox[EditorRequest]
	// Renderer publishes cursor positions.
	Renderer *Broadcast[RenderRequest]
	// Webview publishes scroll targets for viewers.
	Webview *Broadcast[WebviewRequest]
}

// NewSession creates a session over client with a fresh id.
func NewSession(client ports.PreviewServer, logger ports.Logger) *Session {
	id := uuid.NewString()

	requests, mailbox := NewMailbox[Request]()
	editorTx, editorRx := NewMailbox[EditorRequest]()
	renderer := NewBroadcast[RenderRequest](DefaultBroadcastCapacity)
	webview := NewBroadcast[WebviewRequest](DefaultBroadcastCapacity)

	return &Session{
		ID:       id,
		Actor:    NewActor(id, client, logger, mailbox, editorTx, renderer, webview),
		Requests: requests,
		Editor:   editorRx,
		Renderer: renderer,
		Webview:  webview,
	}
}
