// txe-verify checks a Safe Transaction Encryption circuit statement.
//
// It decodes an RLP-encoded PublicInput and PrivateInput pair, recomputes
// every derived value from the private witness, and exits 0 only if each
// one matches the public commitment.
//
// Usage:
//
//	txe-verify [options] <public-input-hex> <private-input-hex>
//
// Options:
//
//	-debug  log which decode stage and equality check ran (stderr)
//
// Both positional arguments are "0x"-prefixed hex strings. Exit code 0
// means the statement holds; any non-zero code means it does not. Release
// builds (no -debug) never report which check failed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pion/logging"

	"github.com/safe-research/safe-txe-verifier/pkg/circuit"
	"github.com/safe-research/safe-txe-verifier/pkg/hexutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("txe-verify", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log decode stages and equality checks to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	var log logging.LeveledLogger
	if *debug {
		factory := logging.NewDefaultLoggerFactory()
		factory.DefaultLogLevel = logging.LogLevelDebug
		log = factory.NewLogger("txe")
		log.Debugf("run %s starting", uuid.New())
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: txe-verify <public-input-hex> <private-input-hex>")
		return 1
	}

	publicBytes, err := hexutil.Decode(fs.Arg(0))
	if err != nil {
		if log != nil {
			log.Debugf("decoding public input hex: %v", err)
		}
		return 1
	}
	privateBytes, err := hexutil.Decode(fs.Arg(1))
	if err != nil {
		if log != nil {
			log.Debugf("decoding private input hex: %v", err)
		}
		return 1
	}

	public, err := circuit.DecodePublicInput(publicBytes)
	if err != nil {
		if log != nil {
			log.Debugf("decoding public input: %v", err)
		}
		return 1
	}
	private, err := circuit.DecodePrivateInput(privateBytes)
	if err != nil {
		if log != nil {
			log.Debugf("decoding private input: %v", err)
		}
		return 1
	}

	if err := circuit.Verify(circuit.Input{Public: public, Private: private}); err != nil {
		if log != nil {
			log.Debugf("verify: %v", err)
		}
		return 1
	}

	if log != nil {
		log.Debug("verify: accepted")
	}
	return 0
}
