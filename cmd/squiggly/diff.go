package main

import (
	"bytes"
	"fmt"

	squiggly "github.com/squiggly-format/go-squiggly"
	"github.com/squiggly-format/go-squiggly/encode"
	"github.com/squiggly-format/go-squiggly/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := diffSide(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := diffSide(cfg, args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		return textDiff(cfg, cc, a, b)
	}
	aJSON, err := ir.Encode(a)
	if err != nil {
		return err
	}
	bJSON, err := ir.Encode(b)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(aJSON, bJSON)
	if err != nil {
		return fmt.Errorf("error computing merge patch: %w", err)
	}
	node, err := ir.Decode(patch)
	if err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, []*ir.Node{node})
}

func diffSide(cfg *DiffConfig, file string) (*ir.Node, error) {
	docs, err := readDocs(cfg.MainConfig, []string{file})
	if err != nil {
		return nil, err
	}
	node := docs[0]
	if len(docs) > 1 {
		node = ir.FromSlice(docs)
	}
	if cfg.Filter == "" {
		return node, nil
	}
	return squiggly.New().Apply(node, cfg.Filter)
}

func textDiff(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) error {
	var aBuf, bBuf bytes.Buffer
	if err := encode.Encode(a, &aBuf); err != nil {
		return err
	}
	if err := encode.Encode(b, &bBuf); err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aBuf.String(), bBuf.String(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	_, err := fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return err
}
