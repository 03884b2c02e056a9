package analysis

import (
	"context"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/magpie-othello/magpie/notation"
	"github.com/magpie-othello/magpie/othello"
	"github.com/magpie-othello/magpie/perft"
	"github.com/magpie-othello/magpie/symmetry"
)

// DefaultMaxDepth bounds perft requests.
const DefaultMaxDepth = 10

type Server struct {
	Debug    bool
	Threads  int
	MaxDepth int
}

var _ AnalysisServer = &Server{}

func (s *Server) logf(format string, args ...interface{}) {
	if s.Debug {
		log.Printf(format, args...)
	}
}

func parseGame(board string, passed bool) (*othello.Game, error) {
	b, next, err := notation.ParseBoard(board)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	g, err := othello.FromState(b, next, passed)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return g, nil
}

func squares(g *othello.Game) []string {
	var out []string
	for it := g.Moves().HotBits(); it.Ok(); it = it.Next() {
		out = append(out, it.Elem().Notation())
	}
	return out
}

func (s *Server) LegalMoves(ctx context.Context, req *LegalMovesRequest) (*LegalMovesResponse, error) {
	g, err := parseGame(req.Board, false)
	if err != nil {
		return nil, err
	}
	moves := squares(g)
	s.logf("legal-moves board=%q n=%d", req.Board, len(moves))
	return &LegalMovesResponse{Moves: moves, MustPass: len(moves) == 0}, nil
}

func (s *Server) Play(ctx context.Context, req *PlayRequest) (*PlayResponse, error) {
	g, err := parseGame(req.Board, req.PassedLastTurn)
	if err != nil {
		return nil, err
	}
	m, err := notation.ParseMove(req.Move)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	var resp PlayResponse
	if !m.Pass {
		for it := g.Board().FlipsFor(g.CurrentTurn(), m.Pos).HotBits(); it.Ok(); it = it.Next() {
			resp.Flipped = append(resp.Flipped, it.Elem().Notation())
		}
	}
	if err := notation.Apply(g, m); err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", m, err)
	}
	resp.Board = notation.FormatBoard(g.Board(), g.CurrentTurn())
	resp.PassedLastTurn = g.PassedLastTurn()
	resp.Status = g.Status().String()
	s.logf("play board=%q move=%s status=%s", req.Board, m, resp.Status)
	return &resp, nil
}

func (s *Server) Perft(ctx context.Context, req *PerftRequest) (*PerftResponse, error) {
	max := s.MaxDepth
	if max == 0 {
		max = DefaultMaxDepth
	}
	if req.Depth < 0 || req.Depth > max {
		return nil, status.Errorf(codes.InvalidArgument, "depth %d out of range [0, %d]", req.Depth, max)
	}
	b, next, err := notation.ParseBoard(req.Board)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	var resp PerftResponse
	resp.Nodes, err = perft.Parallel(ctx, b, next, req.Depth, s.Threads)
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}
	if req.Divide {
		resp.Divide = make(map[string]uint64)
		for p, n := range perft.Divide(b, next, req.Depth) {
			resp.Divide[p.Notation()] = n
		}
	}
	s.logf("perft board=%q depth=%d nodes=%d", req.Board, req.Depth, resp.Nodes)
	return &resp, nil
}

func (s *Server) Canonicalize(ctx context.Context, req *CanonicalizeRequest) (*CanonicalizeResponse, error) {
	var resp CanonicalizeResponse
	if req.Board != "" {
		b, next, err := notation.ParseBoard(req.Board)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		c, sym := symmetry.Canonical(b)
		resp.Board = notation.FormatBoard(c, next)
		resp.Symmetry = sym.String()
	}
	if len(req.Moves) > 0 {
		moves, err := notation.ParseMoves(strings.Join(req.Moves, " "))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		moves, err = symmetry.CanonicalMoves(moves)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		for _, m := range moves {
			resp.Moves = append(resp.Moves, m.String())
		}
	}
	s.logf("canonicalize board=%q moves=%d", req.Board, len(req.Moves))
	return &resp, nil
}
