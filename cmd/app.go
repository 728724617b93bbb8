// Package cmd implements the fincalc CLI application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	EnvCurrency = "FINCALC_CURRENCY"
	EnvRules    = "FINCALC_RULES"
	EnvLogLevel = "FINCALC_LOG_LEVEL"
)

// Commands lists every subcommand, for completion.
var Commands = []subcommands.Command{
	&amortizeCmd{},
	&payoffCmd{},
	&projectCmd{},
	&rentVsBuyCmd{},
	&portfolioCmd{},
	&insightsCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&amortizeCmd{}, "calculators")
	c.Register(&payoffCmd{}, "calculators")
	c.Register(&projectCmd{}, "calculators")
	c.Register(&rentVsBuyCmd{}, "calculators")

	c.Register(&portfolioCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", false, "Log debug information to stderr")
var currency = flag.String("currency", "", "ISO 4217 currency used to display amounts (default $"+EnvCurrency+" or USD)")

// stdout receives every report, tests replace it.
var stdout io.Writer = os.Stdout

// now is the clock used for default dates, tests replace it.
var now = time.Now

// today is the local calendar day.
func today() date.Date { return date.FromTime(now()) }

// log is the CLI logger, tagged with the run id once Setup ran.
var log = finengine.Log("cli")

// Setup loads the optional .env file and configures logging and defaults from the
// environment. Flags win over the environment.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		finengine.Logger().SetLevel(level)
	}
	if *Verbose {
		finengine.Logger().SetLevel(logrus.DebugLevel)
	}
	if *currency == "" {
		*currency = os.Getenv(EnvCurrency)
	}
	log = finengine.Log("cli").WithField("run", uuid.NewString())
	log.WithField("currency", *currency).Debug("fincalc started")
	return nil
}
