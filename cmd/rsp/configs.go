package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/rsp/encode"
	"github.com/signadot/rsp/peel"
)

const version = "0.1.0"

type MainConfig struct {
	Version bool `cli:"name=version desc='print the version'"`

	Main *cli.Command
}

type PeelConfig struct {
	*MainConfig

	Output  string `cli:"name=o aliases=output desc='output file (default: stdout)'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Diff    bool   `cli:"name=diff desc='show the changed lines instead of the document'"`
	Verbose bool   `cli:"name=v desc='report the number of peeled fields on stderr'"`

	Peel *cli.Command
}

func (cfg *PeelConfig) peelOpts(file string) []peel.Option {
	res := []peel.Option{}
	if file != "" {
		res = append(res, peel.Filename(file))
	}
	if cfg.Color && !cfg.Diff {
		res = append(res, peel.EncodeOptions(encode.EncodeColors(encode.NewColors())))
	}
	return res
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
