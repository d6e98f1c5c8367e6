// Command pdclassify enumerates all 65536 deterministic memory-2
// iterated Prisoner's Dilemma strategies and reports the ones passing a
// chosen combination of defensibility, efficiency, and distinguishability
// checks.
//
// Usage: pdclassify <1/0 defensibility> <1/0 efficiency> <1/0 distinguishability>
// Example: pdclassify 1 1 0
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/yohm/pdgame-m2/config"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		epsilon float64
		theta   float64
		workers int
		cfgPath string
		quiet   bool
	)

	pflag.Float64Var(&epsilon, "epsilon", 0, "implementation error rate (default: 1e-5, or config file)")
	pflag.Float64Var(&theta, "theta", 0, "stationary-mass threshold (default: 0.95, or config file)")
	pflag.IntVar(&workers, "workers", 0, "number of parallel workers (default: GOMAXPROCS)")
	pflag.StringVar(&cfgPath, "config", "", "optional YAML file overriding epsilon/theta/workers")
	pflag.BoolVar(&quiet, "quiet", false, "suppress progress logging")
	pflag.Parse()

	if quiet {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	params := config.Defaults()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		params = loaded
	}
	if epsilon != 0 {
		params.Epsilon = epsilon
	}
	if theta != 0 {
		params.Theta = theta
	}
	if workers != 0 {
		params.Workers = workers
	}

	args := pflag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "[Error] invalid number of arguments")
		fmt.Fprintf(os.Stderr, "  Usage: %s <1/0 defensibility> <1/0 efficiency> <1/0 distinguishability>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  example: %s 1 1 0\n", os.Args[0])
		os.Exit(1)
	}

	checkDef, err := strconv.Atoi(args[0])
	if err != nil {
		checkDef = 0
	}
	checkEff, err := strconv.Atoi(args[1])
	if err != nil {
		checkEff = 0
	}
	checkDis, err := strconv.Atoi(args[2])
	if err != nil {
		checkDis = 0
	}

	req := Request{
		CheckDefensibility:   checkDef != 0,
		CheckEfficiency:      checkEff != 0,
		CheckDistinguishable: checkDis != 0,
		Epsilon:              params.Epsilon,
		Theta:                params.Theta,
		Workers:              params.Workers,
	}

	result, err := Run(context.Background(), req)
	if err != nil {
		log.Fatal().Err(err).Msg("classification failed")
	}

	for _, line := range result.Passed {
		fmt.Println(line)
	}

	fmt.Fprintf(os.Stderr, "# passed / # candidates : %d / %d\n", result.NumPassed, result.NumCandidates)
}
