package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/mist/internal/adapters/plaintext"
	"go.trai.ch/mist/internal/adapters/vfs"
	"go.trai.ch/mist/internal/core/domain"
	"go.trai.ch/mist/internal/engine/preview"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// JumpOptions configuration for the Jump method.
type JumpOptions struct {
	// Location is FILE:LINE:COLUMN, one-based.
	Location string
	// Unsaved, when set, replaces the content of the located file for this jump.
	Unsaved io.Reader
}

// Jump prints every rendered position of a source location, one
// "page X Y" line each, by running a preview session over the project.
func (a *App) Jump(ctx context.Context, opts JumpOptions, out io.Writer) error {
	loc, err := domain.ParseSourceLocation(opts.Location)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(loc.Filepath); err == nil {
		loc.Filepath = abs
	}

	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var requests []preview.Request
	if opts.Unsaved != nil {
		content, err := io.ReadAll(opts.Unsaved)
		if err != nil {
			return zerr.Wrap(err, domain.ErrMemoryFilesFailed.Error())
		}
		requests = append(requests, preview.UpdateMemoryFiles{MemoryFiles: domain.MemoryFiles{
			Files: map[string]string{loc.Filepath: string(content)},
		}})
	}
	requests = append(requests, preview.SrcToDocJumpResolve{
		Filepath:  loc.Filepath,
		Line:      loc.Pos.Line,
		Character: loc.Pos.Column,
	})

	server := plaintext.NewServer(vfs.NewOverlay(project.Root), project.Entry)
	session := preview.NewSession(server, a.logger)
	webview := session.Webview.Subscribe()
	defer webview.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		session.Actor.Run(ctx)
		return nil
	})
	g.Go(func() error {
		// Nothing is sent to the editor here, but the queue is drained until the actor closes it.
		for {
			req, ok := session.Editor.Recv(ctx)
			if !ok {
				return nil
			}
			a.logger.Debug(fmt.Sprintf("editor jump to %s", req.DocToSrcJump.Filepath))
		}
	})

	for _, req := range requests {
		session.Requests.Send(req)
	}
	session.Requests.Close()
	if err := g.Wait(); err != nil {
		return err
	}

	var positions []domain.DocumentPosition
	select {
	case req := <-webview.C():
		positions = req.SrcToDocJump
	default:
	}
	if len(positions) == 0 {
		return zerr.With(domain.ErrNoDocumentPosition, "location", opts.Location)
	}

	for _, p := range positions {
		if _, err := fmt.Fprintf(out, "page %d %.2f %.2f\n", p.Page, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
