package serve

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"
	"google.golang.org/grpc"

	"github.com/magpie-othello/magpie/analysis"
)

type Command struct {
	port     int
	debug    bool
	threads  int
	maxDepth int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve analysis RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	flags.BoolVar(&c.debug, "debug", false, "log every request")
	flags.IntVar(&c.threads, "threads", 0, "perft threads per request (0 for one per CPU)")
	flags.IntVar(&c.maxDepth, "max-depth", analysis.DefaultMaxDepth, "deepest perft to accept")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	analysis.Register(grpcServer, &analysis.Server{
		Debug:    c.debug,
		Threads:  c.threads,
		MaxDepth: c.maxDepth,
	})

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
