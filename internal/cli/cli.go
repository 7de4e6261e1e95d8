// Package cli provides the command-line interface for the spec splitter.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/spf13/cobra"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/codec"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/converters"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/verify"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/config"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/splitter"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	configFile string
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{log: log}

	cli.rootCmd = &cobra.Command{
		Use:   "splitspec <spec.json>",
		Short: "Split a Swagger 2.0 specification into one document per tag",
		Long: "A CLI tool that splits a monolithic Swagger 2.0 JSON specification into " +
			"self-contained documents, one per operation tag, each carrying the definitions its operations need.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE:          cli.run,
	}

	cli.setupFlags()

	return cli
}

// setupFlags registers one flag per configuration key. Flag names match the
// config keys so the loader can merge the ones set explicitly.
func (c *CLI) setupFlags() {
	defaults := config.Default()

	f := c.rootCmd.Flags()
	f.StringP(config.KeyOutput, "o", defaults.OutputDir, "Directory that receives the tag documents")
	f.StringP(config.KeyEncoding, "e", defaults.Encoding, "Tag document encoding: json, yaml")
	f.StringP(config.KeyGrouping, "g", defaults.Grouping, "Copy whole path items (path) or only tagged methods (operation)")
	f.Bool(config.KeyComposition, defaults.FollowComposition, "Also collect definitions reached through allOf/anyOf/oneOf/additionalProperties")
	f.Bool(config.KeyVerify, defaults.Verify, "Reload every tag document as Swagger 2.0 and report dangling references")
	f.String(config.KeyReport, defaults.ReportFile, "Write a split report to this file")
	f.String(config.KeyFormat, defaults.ReportFormat, "Report format: pdf, docx, confluence")
	f.StringVarP(&c.configFile, "config", "c", "", "Path to a configuration file (YAML or JSON)")
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with ctx.
func (c *CLI) ExecuteContext(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides the command-line arguments.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	inputFile := args[0]
	c.log.Infof("Loading specification from: %s", inputFile)

	doc, err := codec.LoadFile(ctx, inputFile)
	if err != nil {
		return fmt.Errorf("failed to load specification: %w", err)
	}

	result, err := splitter.Split(doc, cfg.SplitOptions())
	if err != nil {
		return fmt.Errorf("failed to split specification: %w", err)
	}

	c.log.Infof("Made %d changes to $ref values", result.RefChanges)

	encoder, err := codec.EncoderFor(cfg.Encoding)
	if err != nil {
		return err
	}

	writer := codec.NewDirWriter(cfg.OutputDir, encoder)
	written, err := writer.WriteAll(ctx, result.Documents)
	if err != nil {
		return fmt.Errorf("failed to write tag documents: %w", err)
	}
	for tag, path := range written {
		result.Summaries[tag].File = path
	}

	if cfg.Verify {
		if err := c.verify(result); err != nil {
			return err
		}
	}

	if cfg.ReportFile != "" {
		if err := c.writeReport(cfg, result.Report(inputFile, doc)); err != nil {
			return err
		}
	}

	c.log.Infof("Created %d files", len(written))

	return nil
}

// loadConfig merges the config file and environment with the flags the
// user set explicitly.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CLI) verify(result *splitter.Result) error {
	for _, tag := range result.Tags() {
		res, err := verify.Document(result.Documents[tag])
		if err != nil {
			return fmt.Errorf("verification of %q failed: %w", tag, err)
		}

		c.log.Infof("Verified %s: %d paths, %d operations, %d definitions", tag, res.Paths, res.Operations, res.Definitions)
		if len(res.Dangling) > 0 {
			c.log.Infof("%s has %d dangling references: %s", tag, len(res.Dangling), strings.Join(res.Dangling, ", "))
		}
	}

	return nil
}

func (c *CLI) writeReport(cfg *config.Config, report *domain.SplitReport) error {
	converter, err := converters.ForFormat(cfg.ReportFormat)
	if err != nil {
		return err
	}

	c.log.Infof("Writing %s report to: %s", converter.Format(), cfg.ReportFile)

	outputFile, err := os.Create(cfg.ReportFile)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer outputFile.Close()

	if err := converter.Convert(report, outputFile); err != nil {
		return fmt.Errorf("report conversion failed: %w", err)
	}

	return nil
}
