package words

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/mnemonicode"
	"github.com/bokysan/mnemonicode/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command prints the word dictionary, one word per line.
type Command struct {
	Remainder bool `json:"remainder" short:"r" long:"remainder" description:"Print only the seven remainder words."`
	Verify    bool `json:"verify"              long:"verify"    description:"Check the dictionary for corruption instead of printing it."`

	// Output defaults to stdout and is only set directly by tests.
	Output io.Writer
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Print the word dictionary"
}

func (c *Command) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if c.Verify {
		if err := mnemonicode.VerifyWordlist(); err != nil {
			return err
		}
		log.Infof("Dictionary of %v words is intact", mnemonicode.WordCount)
		return nil
	}

	list := mnemonicode.Words()
	if c.Remainder {
		list = list[mnemonicode.BaseWords:]
	}

	out := c.output()
	for _, w := range list {
		if _, err := fmt.Fprintln(out, w); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
