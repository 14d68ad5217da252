package plaintext

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// CompilerNodeID is the unique identifier for the plain-text compiler Graft node.
	CompilerNodeID graft.ID = "adapter.plaintext.compiler"
	// SvgEncoderNodeID is the unique identifier for the SVG encoder Graft node.
	SvgEncoderNodeID graft.ID = "adapter.plaintext.svg"
)

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Compiler, error) {
			return NewCompiler(), nil
		},
	})

	graft.Register(graft.Node[*SvgEncoder]{
		ID:        SvgEncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*SvgEncoder, error) {
			return NewSvgEncoder(), nil
		},
	})
}
