package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sharpgen/sharpgen"
	"github.com/sharpgen/sharpgen/ir"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate C# bindings from an API description."`
	Check   CheckCmd   `cmd:"" help:"Validate the API description and rule set without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out        string `arg:"" help:"Output directory for generated files."`
	API        string `help:"Path of the API description JSON file (default api.json)."`
	Namespace  string `help:"C# namespace for generated declarations." short:"n"`
	SingleFile bool   `help:"Emit all declarations into one Types.cs file."`
	Config     string `help:"Path of the TOML config file." default:"sharpgen.toml"`
	Verbose    bool   `help:"Enable diagnostic logging." short:"v"`
}

func (c *GenCmd) Run() error {
	cfg, err := loadConfig(c.Config, c.API, c.Namespace, c.SingleFile, c.Verbose)
	if err != nil {
		return err
	}
	cfg.OutDir = c.Out

	result, err := sharpgen.Generate(context.Background(), cfg)
	if err != nil {
		return err
	}
	reportWarnings(result.Warnings)
	fmt.Fprintf(os.Stderr, "sharpgen: wrote %d files (%d classes, %d models, %d enums)\n",
		len(result.Files), len(result.Classes), len(result.Models), len(result.Enums))
	return nil
}

type CheckCmd struct {
	API     string `help:"Path of the API description JSON file (default api.json)."`
	Config  string `help:"Path of the TOML config file." default:"sharpgen.toml"`
	Verbose bool   `help:"Enable diagnostic logging." short:"v"`
}

func (c *CheckCmd) Run() error {
	cfg, err := loadConfig(c.Config, c.API, "", false, c.Verbose)
	if err != nil {
		return err
	}

	result, err := sharpgen.Check(context.Background(), cfg)
	if err != nil {
		return err
	}
	reportWarnings(result.Warnings)
	fmt.Fprintf(os.Stderr, "sharpgen: ok (%d classes, %d models, %d enums)\n",
		len(result.Classes), len(result.Models), len(result.Enums))
	return nil
}

// loadConfig layers CLI flags over the optional TOML config file.
func loadConfig(path, api, namespace string, singleFile, verbose bool) (*sharpgen.Config, error) {
	cfg, err := sharpgen.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if api != "" {
		cfg.APIPath = api
	}
	if namespace != "" {
		cfg.Namespace = namespace
	}
	if singleFile {
		cfg.SingleFile = true
	}
	cfg.Verbose = verbose
	return cfg, nil
}

func reportWarnings(warnings []ir.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s (%s)\n", w.Code, w.Message, w.Subject)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sharpgen"),
		kong.Description("Generate C# API bindings from a language-agnostic API description."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sharpgen: %v\n", err)
		os.Exit(1)
	}
}
