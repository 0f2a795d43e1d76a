package decode

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"

	"github.com/bokysan/mnemonicode"
	"github.com/bokysan/mnemonicode/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads mnemonic words from the input and writes the reconstructed
// bytes to the output. The decoded payload is buffered so that a malformed
// word list does not leave half a message on the output.
type Command struct {
	// Input and Output default to the standard streams and are only set
	// directly by tests.
	Input  io.Reader
	Output io.Writer
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode words back into data"
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

	text, err := ioutil.ReadAll(c.input())
	if err != nil {
		return errors.Wrapf(err, "Could not read input")
	}

	var payload bytes.Buffer
	n, err := mnemonicode.Decode(&payload, text)
	if err != nil {
		return err
	}

	log.Debugf("Decoded %v bytes", n)
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Payload:\n%v", spew.Sdump(payload.Bytes()))
	}

	if _, err := c.output().Write(payload.Bytes()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
