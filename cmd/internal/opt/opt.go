package opt

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/magpie-othello/magpie/ai"
	"github.com/magpie-othello/magpie/cli"
)

// Profile adds the profiling flags shared by long-running commands.
type Profile struct {
	CPU string
	Mem string
}

func (o *Profile) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.CPU, "cpu-profile", "", "write a CPU profile")
	flags.StringVar(&o.Mem, "mem-profile", "", "write a memory profile")
}

// Start begins any requested profiles. The returned function stops
// them and must be called before exit.
func (o *Profile) Start() func() {
	var stops []func()
	if o.CPU != "" {
		f, e := os.OpenFile(o.CPU, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if e != nil {
			log.Fatalf("open cpu-profile: %s: %v", o.CPU, e)
		}
		pprof.StartCPUProfile(f)
		stops = append(stops, func() {
			pprof.StopCPUProfile()
			f.Close()
		})
	}
	if o.Mem != "" {
		stops = append(stops, func() {
			f, e := os.OpenFile(o.Mem, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if e != nil {
				log.Printf("open mem-profile: %v", e)
				return
			}
			defer f.Close()
			pprof.Lookup("heap").WriteTo(f, 0)
		})
	}
	return func() {
		for _, s := range stops {
			s()
		}
	}
}

// ParsePlayer builds a player from a spec: "human", "rand", or
// "rand:SEED".
func ParsePlayer(spec string, in *bufio.Reader, out io.Writer) (ai.Player, error) {
	switch {
	case spec == "human":
		return cli.NewCLIPlayer(out, in), nil
	case spec == "rand":
		return ai.NewRandom(0), nil
	case strings.HasPrefix(spec, "rand:"):
		seed, err := strconv.ParseInt(spec[len("rand:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", spec, err)
		}
		return ai.NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown player: %q", spec)
}
