// Command dfpwm encodes, decodes and inspects DFPWM1a audio.
//
// Usage:
//
//	dfpwm <command> [flags]
//
// Commands:
//
//	encode     raw PCM to packed DFPWM
//	decode     packed DFPWM to raw PCM
//	roundtrip  encode and decode PCM, then report quality metrics
//	gen        write a synthetic test signal as raw PCM
//
// Input and output default to stdin and stdout. Raw PCM is headerless
// signed 8-bit (s8), unsigned 8-bit (u8) or signed 16-bit little-endian
// (s16le). Set LOG_LEVEL to debug, info, warn or error to control logging
// on stderr.
//
// Examples:
//
//	dfpwm encode -in voice.s8 -out voice.dfpwm
//	dfpwm decode -format s16le -lowpass 256 < voice.dfpwm > voice.raw
//	dfpwm gen -kind sine -freq 440 -duration 2s | dfpwm roundtrip
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-dfpwm/internal/logger"
)

type command struct {
	name    string
	summary string
	run     func(args []string, env *environment) error
}

var commands = []command{
	{"encode", "raw PCM to packed DFPWM", runEncode},
	{"decode", "packed DFPWM to raw PCM", runDecode},
	{"roundtrip", "encode and decode PCM, then report quality metrics", runRoundtrip},
	{"gen", "write a synthetic test signal as raw PCM", runGen},
}

// environment carries the process streams so commands can run in tests.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	logger.Init(os.Stderr)

	env := &environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}

	err := run(os.Args[1:], env)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		log.Error().Err(err).Msg("dfpwm failed")
		os.Exit(1)
	}
}

func run(args []string, env *environment) error {
	if len(args) == 0 {
		usage(env.stderr)
		return flag.ErrHelp
	}

	name := args[0]
	for _, c := range commands {
		if c.name == name {
			return c.run(args[1:], env)
		}
	}

	if name == "-h" || name == "-help" || name == "help" {
		usage(env.stderr)
		return flag.ErrHelp
	}

	usage(env.stderr)

	return fmt.Errorf("unknown command %q", name)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: dfpwm <command> [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")

	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}

	fmt.Fprintf(w, "\nRun 'dfpwm <command> -h' for command flags.\n")
}
