package main

import (
	"fmt"

	squiggly "github.com/squiggly-format/go-squiggly"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	if cfg.Filter != "" {
		sq := squiggly.New()
		for i, doc := range docs {
			docs[i], err = sq.Apply(doc, cfg.Filter)
			if err != nil {
				return fmt.Errorf("error filtering document %d: %w", i, err)
			}
		}
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs)
}
