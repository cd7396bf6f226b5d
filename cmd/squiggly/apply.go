package main

import (
	"fmt"

	squiggly "github.com/squiggly-format/go-squiggly"
	"github.com/squiggly-format/go-squiggly/ir"

	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	var filter string
	if cfg.Profile != "" {
		filter, err = profileFilter(cfg.MainConfig, cfg.Profile)
		if err != nil {
			return err
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("%w: missing filter argument", cli.ErrUsage)
		}
		filter = args[0]
		args = args[1:]
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	sq := squiggly.New()
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		res[i], err = sq.Apply(doc, filter)
		if err != nil {
			return fmt.Errorf("error filtering document %d: %w", i, err)
		}
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}
