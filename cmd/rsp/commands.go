package main

import (
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rsp/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "rsp").
		WithSynopsis("rsp [opts] command [opts]").
		WithDescription("Raw String Peeler - convert escaped strings in YAML to readable format.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rspMain(cfg, cc, args)
		}).
		WithSubs(PeelCommand(cfg))
}

func PeelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PeelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Peel, "peel").
		WithAliases("p").
		WithSynopsis("peel [-o output] [file]").
		WithDescription("Peel raw strings from YAML files. Reads stdin when no file is given.\n" +
			"ConfigMap data keys ending in " + strings.Join(format.Suffixes(), ", ") + " are peeled.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return peelCmd(cfg, cc, args)
		})
}
