// Package main implements the fastcsv2json command line tool: fast
// conversion of large delimited text files to a JSON array.
package main

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/lucast70/fastcsv2json"
)

const version = "0.1.0"

var (
	delimiterSet bool
	colorSet     bool

	delimiter   = kingpin.Flag("delimiter", "Delimiter as pipe, comma, semicolumn, column, space or tab.").Short('d').Default("comma").Action(setFlag(&delimiterSet)).String()
	infile      = kingpin.Flag("infile", "Input file path, default STDIN.").Short('i').String()
	outfile     = kingpin.Flag("outfile", "Output file path, default STDOUT.").Short('o').String()
	replace     = kingpin.Flag("replace-with-space", "Replace comma, semicolumn, column, tab, backslash, lf, cr, dquote, squote or slash characters of input with a space. Repeatable.").Short('r').Strings()
	erase       = kingpin.Flag("erase-char", "Remove comma, semicolumn, column, space, tab, backslash, lf, cr, dquote, squote or slash characters from input. Repeatable.").Short('e').Strings()
	colorMode   = kingpin.Flag("color", "Colorize output: auto, always or never.").Default("auto").Action(setFlag(&colorSet)).Enum("auto", "always", "never")
	profilePath = kingpin.Flag("config", "YAML file with default options.").Short('c').String()
)

// setFlag records that a flag was given on the command line, telling
// an explicit value apart from its default during profile merging.
func setFlag(b *bool) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		*b = true
		return nil
	}
}

// options collects the run options after flags and an optional profile
// have been merged.
type options struct {
	delimiter    string
	delimiterSet bool
	infile       string
	outfile      string
	replace      []string
	erase        []string
	color        string
	colorSet     bool
}

// applyProfile fills in profile values for options not given on the
// command line.  Flags win over the profile; replace and erase lists
// are combined, profile entries first.
func (o *options) applyProfile(p *fastcsv2json.Profile) {
	if !o.delimiterSet && p.Delimiter != "" {
		o.delimiter = p.Delimiter
	}
	if o.infile == "" {
		o.infile = p.Infile
	}
	if o.outfile == "" {
		o.outfile = p.Outfile
	}
	if !o.colorSet && p.Color != "" {
		o.color = p.Color
	}
	o.replace = append(append([]string{}, p.Replace...), o.replace...)
	o.erase = append(append([]string{}, p.Erase...), o.erase...)
}

func main() {
	kingpin.Version(version)
	kingpin.CommandLine.Help = "Convert csv to json array."
	kingpin.Parse()

	opts := &options{
		delimiter:    *delimiter,
		delimiterSet: delimiterSet,
		infile:       *infile,
		outfile:      *outfile,
		replace:      *replace,
		erase:        *erase,
		color:        *colorMode,
		colorSet:     colorSet,
	}

	if *profilePath != "" {
		profile, err := fastcsv2json.LoadProfile(*profilePath)
		kingpin.FatalIfError(err, "load profile")
		opts.applyProfile(profile)
	}

	cfg := fastcsv2json.NewConfig()
	kingpin.FatalIfError(cfg.SetDelimiter(opts.delimiter), "")
	for _, name := range opts.replace {
		kingpin.FatalIfError(cfg.AddReplace(name), "")
	}
	for _, name := range opts.erase {
		kingpin.FatalIfError(cfg.AddErase(name), "")
	}

	var in io.Reader = os.Stdin
	if opts.infile != "" {
		f, err := os.Open(opts.infile)
		kingpin.FatalIfError(err, "open input")
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if opts.outfile != "" {
		f, err := os.Create(opts.outfile)
		kingpin.FatalIfError(err, "open output")
		outFile = f
		out = f
	}

	conv := fastcsv2json.NewConverter(cfg)
	if useColor(opts.color, outFile) {
		conv.Color = fastcsv2json.DefaultColorizer()
		if outFile == nil {
			out = colorable.NewColorableStdout()
		}
	}

	kingpin.FatalIfError(conv.Run(in, out), "convert")

	if outFile != nil {
		kingpin.FatalIfError(outFile.Close(), "close output")
	}
}

// useColor decides whether to colorize: never for file output, and in
// auto mode only when stdout is a terminal.
func useColor(mode string, outFile *os.File) bool {
	if outFile != nil || mode == "never" {
		return false
	}
	if mode == "always" {
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
