package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mist/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/adapters/plaintext" //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mist/internal/core/ports"
	"go.trai.ch/mist/internal/engine/export"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
			plaintext.CompilerNodeID,
			plaintext.SvgEncoderNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ExportStore](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	compiler, err := graft.Dep[*plaintext.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	svg, err := graft.Dep[*plaintext.SvgEncoder](ctx)
	if err != nil {
		return nil, err
	}

	// The byte-level PDF and PNG encoders are external; without them those
	// export kinds report ErrEncoderUnavailable.
	features := export.Features{
		Compiler: compiler,
		Markdown: compiler,
		Svg:      svg,
	}
	return New(loader, log, store, tracer, w, features), nil
}
