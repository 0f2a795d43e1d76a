package encode

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bokysan/mnemonicode"
	"github.com/bokysan/mnemonicode/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads raw bytes from the input and writes their mnemonic word
// representation to the output.
type Command struct {
	Template string `json:"template" short:"t" long:"template" env:"TEMPLATE" default:"x-x-x--" description:"Output layout. Letter runs are replaced by the encoded words, any other character is copied verbatim. The layout repeats as long as there are words left."`
	Newline  bool   `json:"newline"  short:"n" long:"newline"  env:"NEWLINE"                    description:"Terminate the encoded output with a newline."`

	// Input and Output default to the standard streams and are only set
	// directly by tests.
	Input  io.Reader
	Output io.Writer
}

func NewCommand() *Command {
	return &Command{
		Template: mnemonicode.DefaultTemplate,
	}
}

func (c *Command) String() string {
	return "Encode data into words"
}

func (c *Command) input() io.Reader {
	if c.Input != nil {
		return c.Input
	}
	return os.Stdin
}

func (c *Command) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := ioutil.ReadAll(c.input())
	if err != nil {
		return errors.Wrapf(err, "Could not read input")
	}

	log.Debugf("Encoding %v bytes into %v words", len(data), mnemonicode.WordsRequired(len(data)))

	out := c.output()
	if err := mnemonicode.EncodeWithTemplate(out, data, c.Template); err != nil {
		return err
	}

	if c.Newline {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
