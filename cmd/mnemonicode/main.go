package main

import (
	"fmt"
	"github.com/bokysan/mnemonicode/internal/args"
	"github.com/bokysan/mnemonicode/internal/commands/decode"
	"github.com/bokysan/mnemonicode/internal/commands/encode"
	"github.com/bokysan/mnemonicode/internal/commands/version"
	"github.com/bokysan/mnemonicode/internal/commands/words"
	mnFlags "github.com/bokysan/mnemonicode/internal/flags"
	"github.com/bokysan/mnemonicode/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Mnemonicode is the main executable
type Mnemonicode struct {
	parser *flags.Parser
}

// NewMnemonicode will create a new instance of Mnemonicode and initialize the parser
func NewMnemonicode() *Mnemonicode {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	mn := &Mnemonicode{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	mn.setupGeneral()
	mn.setupVersion()
	mn.setupEncode()
	mn.setupDecode()
	mn.setupWords()

	return mn
}

// setupGeneral will configure general options
func (mn *Mnemonicode) setupGeneral() {
	if _, err := mn.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (mn *Mnemonicode) setupVersion() {
	cmd := &version.Command{}
	_, err := mn.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (mn *Mnemonicode) setupEncode() {
	cmd := encode.NewCommand()
	_, err := mn.parser.AddCommand(
		"encode",
		"Encode data into words",
		"Read raw bytes from the standard input and print them as mnemonic words",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (mn *Mnemonicode) setupDecode() {
	cmd := decode.NewCommand()
	_, err := mn.parser.AddCommand(
		"decode",
		"Decode words back into data",
		"Read mnemonic words from the standard input and print the reconstructed bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupWords adds the `words` command
func (mn *Mnemonicode) setupWords() {
	cmd := words.NewCommand()
	_, err := mn.parser.AddCommand(
		"words",
		"Print the word dictionary",
		"Print the dictionary one word per line, or verify its integrity",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts mnemonicode and reads the configuration file
func main() {

	mnemonicode := NewMnemonicode()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := mnFlags.NewYamlParser(mnemonicode.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := mnemonicode.parser.Parse()
	util.MustErrorNilOrExit(err)

}
