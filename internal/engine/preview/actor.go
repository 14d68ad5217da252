// Package preview synchronizes positions between editors, the source files and
// the rendered document of a live preview session.
package preview

import (
	"context"
	"fmt"

	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Actor processes the requests of one preview session, one at a time.
//
// Resolver and editor server failures are logged and dropped. They never stop
// the actor or affect later requests.
type Actor struct {
	session  string
	client   ports.PreviewServer
	logger   ports.Logger
	mailbox  *Mailbox[Request]
	editor   *Sender[EditorRequest]
	renderer *Broadcast[RenderRequest]
	webview  *Broadcast[WebviewRequest]
}

// NewActor creates an actor reading from mailbox.
// The actor owns editor and closes it when Run returns.
func NewActor(
	session string,
	client ports.PreviewServer,
	logger ports.Logger,
	mailbox *Mailbox[Request],
	editor *Sender[EditorRequest],
	renderer *Broadcast[RenderRequest],
	webview *Broadcast[WebviewRequest],
) *Actor {
	return &Actor{
		session:  session,
		client:   client,
		logger:   logger,
		mailbox:  mailbox,
		editor:   editor,
		renderer: renderer,
		webview:  webview,
	}
}

// Run processes requests until every sender of the mailbox is closed and the
// mailbox is drained, or ctx is done. A request that has been received always
// runs to completion.
func (a *Actor) Run(ctx context.Context) {
	defer a.editor.Close()

	a.debugf("waiting for requests")
	for {
		req, ok := a.mailbox.Recv(ctx)
		if !ok {
			break
		}
		req.dispatch(context.WithoutCancel(ctx), a)
	}
	a.logger.Info(fmt.Sprintf("preview session %s: exiting", a.session))
}

func (a *Actor) docToSrcJump(ctx context.Context, r DocToSrcJumpResolve) {
	a.debugf("processing doc2src: %v -> %v", r.Start, r.End)

	start := a.resolveSpan(ctx, r.Start.Span, &r.Start.Offset)
	end := a.resolveSpan(ctx, r.End.Span, &r.End.Offset)
	elem := a.resolveSpan(ctx, r.End.Span, nil)

	info := ReconcileJump(start, end, elem)
	if info == nil {
		return
	}
	a.editor.Send(EditorRequest{DocToSrcJump: *info})
}

func (a *Actor) changeCursor(ctx context.Context, r ChangeCursorPosition) {
	a.debugf("processing cursor: %s:%d:%d", r.Filepath, r.Line, r.Character)

	span, err := a.client.ResolveSourceSpan(ctx, r.location())
	if err != nil {
		a.fail("resolve cursor position", err)
		return
	}
	if span == nil {
		return
	}
	a.renderer.Publish(RenderRequest{CursorPosition: *span})
}

func (a *Actor) srcToDocJump(ctx context.Context, r SrcToDocJumpResolve) {
	a.debugf("processing src2doc: %s:%d:%d", r.Filepath, r.Line, r.Character)

	points, err := a.client.ResolveDocumentPosition(ctx, r.location())
	if err != nil {
		a.fail("resolve src to doc jump", err)
		return
	}

	positions := make([]domain.DocumentPosition, 0, len(points))
	for _, p := range points {
		positions = append(positions, domain.DocumentPosition{
			Page: p.Page,
			X:    float32(p.Point.X),
			Y:    float32(p.Point.Y),
		})
	}
	a.webview.Publish(WebviewRequest{SrcToDocJump: positions})
}

func (a *Actor) syncMemoryFiles(ctx context.Context, r SyncMemoryFiles) {
	a.debugf("processing SYNC memory files: %v", r.Paths())
	if err := a.client.UpdateMemoryFiles(ctx, r.MemoryFiles, true); err != nil {
		a.failFiles("SyncMemoryFiles", err)
	}
}

func (a *Actor) updateMemoryFiles(ctx context.Context, r UpdateMemoryFiles) {
	a.debugf("processing UPDATE memory files: %v", r.Paths())
	if err := a.client.UpdateMemoryFiles(ctx, r.MemoryFiles, false); err != nil {
		a.failFiles("UpdateMemoryFiles", err)
	}
}

func (a *Actor) removeMemoryFiles(ctx context.Context, r RemoveMemoryFiles) {
	a.debugf("processing REMOVE memory files: %v", r.Files)
	if err := a.client.RemoveShadowFiles(ctx, r.MemoryFilesShort); err != nil {
		a.failFiles("RemoveMemoryFiles", err)
	}
}

func (a *Actor) resolveSpan(ctx context.Context, span domain.Span, offset *int) *domain.JumpInfo {
	info, err := a.client.ResolveSourceLocation(ctx, span, offset)
	if err != nil {
		a.fail("resolve doc to src jump", err)
		return nil
	}
	return info
}

func (a *Actor) fail(op string, err error) {
	err = zerr.Wrap(err, domain.ErrResolutionFailed.Error())
	err = zerr.With(err, "op", op)
	a.logger.Error(zerr.With(err, "session", a.session))
}

func (a *Actor) failFiles(op string, err error) {
	err = zerr.Wrap(err, domain.ErrMemoryFilesFailed.Error())
	err = zerr.With(err, "op", op)
	a.logger.Error(zerr.With(err, "session", a.session))
}

func (a *Actor) debugf(format string, args ...any) {
	a.logger.Debug(fmt.Sprintf("preview session %s: ", a.session) + fmt.Sprintf(format, args...))
}
