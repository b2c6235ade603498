package main

import (
	"context"
	"fmt"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/cluedef/cluedef"
	"github.com/cluedef/cluedef/internal/util"
)

func dumpOptions(opts *cluedef.Options) {
	pp.Println(opts)
}

func main() {
	util.InitSlog()
	opts := parseOptions(os.Args[1:])

	if err := cluedef.Run(context.Background(), *opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", opts.InputFile, err)
		os.Exit(1)
	}
}
