package main

import (
	"fmt"
	"slices"

	"github.com/squiggly-format/go-squiggly/fn"

	"github.com/scott-cotton/cli"
)

func functions(cfg *FunctionsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Functions.Parse(cc, args); err != nil {
		return err
	}
	names := fn.DefaultSource().Names()
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(cc.Out, "%s\n", name)
	}
	return nil
}
