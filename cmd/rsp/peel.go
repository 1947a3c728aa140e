package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rsp/ir"
	"github.com/signadot/rsp/libdiff"
	"github.com/signadot/rsp/peel"
)

func peelCmd(cfg *PeelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Peel.Parse(cc, args)
	if err != nil {
		return err
	}
	return peelRun(cfg, cc.In, cc.Out, cc.Err, args)
}

func peelRun(cfg *PeelConfig, r io.Reader, w, errW io.Writer, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file, got %d", cli.ErrUsage, len(args))
	}
	file := ""
	if len(args) == 1 && args[0] != "-" {
		file = args[0]
	}
	var (
		in  []byte
		err error
	)
	if file != "" {
		in, err = peel.ReadFile(file)
	} else {
		in, err = peel.ReadInput(r)
	}
	if err != nil {
		return err
	}
	res, err := peel.Content(in, cfg.peelOpts(file)...)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(errW, "peeled %d field(s)\n", res.Peeled)
	}
	out := res.Output
	if cfg.Diff {
		out, err = diffOutput(in, res.Output, cfg.Output == "" && isTerminal(w))
		if err != nil {
			return err
		}
	}
	return deliver(cfg.Output, out, w)
}

func diffOutput(in, out []byte, colored bool) ([]byte, error) {
	lines := libdiff.DiffLines(string(in), string(out))
	if !libdiff.Changed(lines) {
		return nil, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := libdiff.WriteLines(buf, lines, colored); err != nil {
		return nil, ir.WrapError(ir.ErrProcessing, err)
	}
	return buf.Bytes(), nil
}

// deliver writes out to path with a confirmation on w, or to w verbatim
// when path is empty.
func deliver(path string, out []byte, w io.Writer) error {
	if path == "" {
		if _, err := w.Write(out); err != nil {
			return ir.WrapError(ir.ErrIO, err)
		}
		return nil
	}
	if err := peel.WriteFile(path, out); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Output written to %s\n", path)
	return err
}
