package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	tagtree "github.com/KimNorgaard/go-tagtree"
	"github.com/KimNorgaard/go-tagtree/ast"
)

var parseFlagNames = struct {
	output, indent, strict, maxDepth, encoding string
}{"output", "indent", "strict", "max-depth", "encoding"}

func newParseCmd(g *globalFlags) *cobra.Command {
	var flags Config

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a markup document and print its tree",
		Long: `Parse a markup document and print the resulting tree.

The document is read from the named file, or from stdin when no file is
given. Input in a legacy character set is converted to UTF-8 first, using
the encoding named by --encoding or by the document's declaration.

Output formats:
  json  element tree as JSON (default)
  yaml  element tree as YAML
  xml   normalized markup without comments

Examples:
  # Print a file as JSON
  tagtree parse catalog.xml

  # Require closing tags to match, limit nesting
  tagtree parse --strict --max-depth 64 catalog.xml

  # Read Latin-1 input from stdin and print YAML
  tagtree parse --encoding iso-8859-1 -o yaml < legacy.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, g, flags, args)
		},
	}

	def := defaultConfig()
	cmd.Flags().StringVarP(&flags.Output, parseFlagNames.output, "o", def.Output, "output format: json, yaml, xml")
	cmd.Flags().IntVar(&flags.Indent, parseFlagNames.indent, def.Indent, "spaces per nesting level, 0 for compact output")
	cmd.Flags().BoolVar(&flags.Strict, parseFlagNames.strict, def.Strict, "require closing tags to match their opening tag")
	cmd.Flags().IntVar(&flags.MaxDepth, parseFlagNames.maxDepth, def.MaxDepth, "maximum element nesting, 0 for no limit")
	cmd.Flags().StringVar(&flags.Encoding, parseFlagNames.encoding, def.Encoding, "input character encoding (default: from declaration, else UTF-8)")
	return cmd
}

func runParse(cmd *cobra.Command, g *globalFlags, flags Config, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), g.verbose)

	cfg, err := loadConfig(g.cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("configuration loaded", "config_file", g.cfgFile, "output", cfg.Output, "strict", cfg.Strict, "max_depth", cfg.MaxDepth)

	source, data, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	data, charset, err := toUTF8(data, cfg.Encoding)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("input read", "source", source, "bytes", len(data), "charset", charset)

	var opts []tagtree.Option
	if cfg.Strict {
		opts = append(opts, tagtree.StrictCloseTags())
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, tagtree.MaxDepth(cfg.MaxDepth))
	}

	start := time.Now()
	doc, err := tagtree.ParseBytes(data, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("document parsed",
		"source", source,
		"elements", countElements(doc),
		"declaration", doc.Declaration != nil,
		"duration", time.Since(start),
	)
	if doc.Root == nil {
		logger.Warn("document has no root element", "source", source)
	}

	return writeDocument(cmd.OutOrStdout(), doc, cfg)
}

// applyFlags copies the flags that were set explicitly over cfg.
func applyFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	changed := cmd.Flags().Changed
	if changed(parseFlagNames.output) {
		cfg.Output = flags.Output
	}
	if changed(parseFlagNames.indent) {
		cfg.Indent = flags.Indent
	}
	if changed(parseFlagNames.strict) {
		cfg.Strict = flags.Strict
	}
	if changed(parseFlagNames.maxDepth) {
		cfg.MaxDepth = flags.MaxDepth
	}
	if changed(parseFlagNames.encoding) {
		cfg.Encoding = flags.Encoding
	}
}

func countElements(doc *ast.Document) int {
	if doc.Root == nil {
		return 0
	}
	n := 0
	doc.Root.Walk(func(*ast.Element) bool {
		n++
		return true
	})
	return n
}
