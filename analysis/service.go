// Package analysis serves move generation, perft and canonical forms
// over gRPC.
package analysis

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "magpie.Analysis"

type AnalysisServer interface {
	LegalMoves(context.Context, *LegalMovesRequest) (*LegalMovesResponse, error)
	Play(context.Context, *PlayRequest) (*PlayResponse, error)
	Perft(context.Context, *PerftRequest) (*PerftResponse, error)
	Canonicalize(context.Context, *CanonicalizeRequest) (*CanonicalizeResponse, error)
}

func unary[Req any, Resp any](name string, call func(AnalysisServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AnalysisServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(AnalysisServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalysisServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("LegalMoves", AnalysisServer.LegalMoves),
		unary("Play", AnalysisServer.Play),
		unary("Perft", AnalysisServer.Perft),
		unary("Canonicalize", AnalysisServer.Canonicalize),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "analysis",
}

func Register(s *grpc.Server, srv AnalysisServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Client calls a remote analysis service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Codec)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LegalMoves(ctx context.Context, in *LegalMovesRequest, opts ...grpc.CallOption) (*LegalMovesResponse, error) {
	return invoke[LegalMovesResponse](ctx, c, "LegalMoves", in, opts)
}

func (c *Client) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*PlayResponse, error) {
	return invoke[PlayResponse](ctx, c, "Play", in, opts)
}

func (c *Client) Perft(ctx context.Context, in *PerftRequest, opts ...grpc.CallOption) (*PerftResponse, error) {
	return invoke[PerftResponse](ctx, c, "Perft", in, opts)
}

func (c *Client) Canonicalize(ctx context.Context, in *CanonicalizeRequest, opts ...grpc.CallOption) (*CanonicalizeResponse, error) {
	return invoke[CanonicalizeResponse](ctx, c, "Canonicalize", in, opts)
}
