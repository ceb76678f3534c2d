package sharpgen

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/sharpgen/sharpgen/csharp"
	"github.com/sharpgen/sharpgen/provider"
	"github.com/sharpgen/sharpgen/sink"
)

// Generate runs a full generation: load and validate the API description,
// translate it, and write the C# declarations under cfg.OutDir.
func Generate(ctx context.Context, cfg *Config) (*csharp.GenerateResult, error) {
	if cfg.OutDir == "" {
		return nil, errors.New("OutDir is required")
	}
	cfg = applyConfigDefaults(cfg)
	return run(ctx, cfg, sink.NewFilesystemSink(cfg.OutDir))
}

// Check runs the translation pass against an in-memory sink, validating
// the API description and the full rule set without touching disk.
func Check(ctx context.Context, cfg *Config) (*csharp.GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	return run(ctx, cfg, sink.NewMemorySink())
}

func run(ctx context.Context, cfg *Config, out sink.OutputSink) (*csharp.GenerateResult, error) {
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = log.Sync() }()

	classes, err := provider.Load(cfg.APIPath)
	if err != nil {
		return nil, errors.Wrap(err, "load api description")
	}

	gen := &csharp.Generator{}
	result, err := gen.Generate(ctx, classes, csharp.GenerateOptions{
		Sink: out,
		Config: csharp.GeneratorConfig{
			Namespace:    cfg.Namespace,
			SingleFile:   cfg.SingleFile,
			EmitComments: cfg.EmitComments != "none",
			TypeMappings: cfg.TypeMappings,
		},
		Log: log.Sugar(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate")
	}
	return result, nil
}

// newLogger builds the run logger: human-readable development output when
// verbose, warnings only otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}
