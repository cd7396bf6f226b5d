package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/squiggly-format/go-squiggly/encode"
	"github.com/squiggly-format/go-squiggly/format"
	"github.com/squiggly-format/go-squiggly/ir"

	"github.com/goccy/go-yaml"
)

// readDocs reads every document from the named files, or stdin when files
// is empty. "-" names stdin. YAML input may hold multiple documents
// separated by "---".
func readDocs(cfg *MainConfig, files []string) ([]*ir.Node, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []*ir.Node
	for _, file := range files {
		docs, err := readFile(cfg, file)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

func readFile(cfg *MainConfig, file string) ([]*ir.Node, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	in, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	fmat := cfg.inFormat()
	if cfg.InFormat == nil && !cfg.J && !cfg.Y {
		fmat = sniffFormat(file, in)
	}
	docs, err := decodeDocs(in, fmat)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return docs, nil
}

func decodeDocs(in []byte, fmat format.Format) ([]*ir.Node, error) {
	if fmat.IsJSON() {
		node, err := ir.Decode(in)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{node}, nil
	}
	var res []*ir.Node
	for i, doc := range bytes.Split(in, []byte("\n---\n")) {
		var v any
		if err := yaml.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, node)
	}
	return res, nil
}

// sniffFormat guesses the input format from the filename and, failing
// that, from the first structural byte.
func sniffFormat(file string, in []byte) format.Format {
	switch {
	case strings.HasSuffix(file, ".json"):
		return format.JSONFormat
	case strings.HasSuffix(file, ".yaml"), strings.HasSuffix(file, ".yml"):
		return format.YAMLFormat
	}
	for _, c := range in {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{', '[', '"':
			return format.JSONFormat
		default:
			return format.YAMLFormat
		}
	}
	return format.JSONFormat
}

func writeDocs(cfg *MainConfig, w io.Writer, docs []*ir.Node) error {
	n := len(docs)
	for i, doc := range docs {
		if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
