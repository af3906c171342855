// Package cmd implements the CLI commands for datekit.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/advancedformat"
	"github.com/goliatone/go-datekit/plugins/calendar"
	"github.com/goliatone/go-datekit/plugins/comparison"
	"github.com/goliatone/go-datekit/plugins/customparseformat"
	"github.com/goliatone/go-datekit/plugins/dayofyear"
	"github.com/goliatone/go-datekit/plugins/isoweek"
	"github.com/goliatone/go-datekit/plugins/localizedformat"
	"github.com/goliatone/go-datekit/plugins/minmax"
	"github.com/goliatone/go-datekit/plugins/quarterofyear"
	"github.com/goliatone/go-datekit/plugins/relativetime"
	"github.com/goliatone/go-datekit/plugins/timezone"
	"github.com/goliatone/go-datekit/plugins/weekofyear"
)

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var errInvalidDate = errors.New("invalid date")

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	stderr  io.Writer
	logger  *slog.Logger
	env     *datekit.Env
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

// NewRootCommand returns a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), stderr: os.Stderr}

	root := &cobra.Command{
		Use:     "datekit",
		Short:   "Format, parse and manipulate dates",
		Version: version,
		Long: `datekit formats, parses and manipulates dates with locale aware
layouts such as "dddd D MMMM YYYY" or "LLLL".

Configuration is read from .datekit.yaml (home or working directory),
DATEKIT_ environment variables and flags, in increasing priority:
  DATEKIT_LOCALE     - default locale (en)
  DATEKIT_TIMEZONE   - IANA zone used for input and output
  DATEKIT_LAYOUT     - default output layout
  DATEKIT_NOW        - fixed RFC 3339 instant used as "now"`,
		SilenceUsage: true,
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		a.stderr = cmd.ErrOrStderr()
		if err := a.initConfig(); err != nil {
			return err
		}
		a.initLogging(cmd.Root().PersistentFlags())
		return a.buildEnv()
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.datekit.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringP("locale", "L", "", "locale used for output")
	flags.String("tz", "", "IANA time zone, defaults to the local zone")
	flags.String("now", "", "fixed RFC 3339 instant used as now")
	flags.StringSlice("from", nil, "input layouts tried in order, e.g. DD/MM/YYYY")
	flags.StringP("layout", "f", "", "output layout")

	mustBindPFlag(a.v, "locale", flags.Lookup("locale"))
	mustBindPFlag(a.v, "timezone", flags.Lookup("tz"))
	mustBindPFlag(a.v, "now", flags.Lookup("now"))
	mustBindPFlag(a.v, "input_layouts", flags.Lookup("from"))
	mustBindPFlag(a.v, "layout", flags.Lookup("layout"))

	root.AddCommand(
		newFormatCommand(a),
		newParseCommand(a),
		newShiftCommand(a, "add", 1),
		newShiftCommand(a, "subtract", -1),
		newBoundaryCommand(a, "startof"),
		newBoundaryCommand(a, "endof"),
		newDiffCommand(a),
		newRelativeCommand(a),
		newCalendarCommand(a),
		newBetweenCommand(a),
		newMinMaxCommand(a),
		newInfoCommand(a),
		newLocalesCommand(a),
		newEnvCommand(a),
		newVersionCommand(),
	)

	return root
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", datekit.DefaultLocaleCode)
	v.SetDefault("locales", datekit.BuiltinLocales())
	v.SetDefault("locale_files", []string{})
	v.SetDefault("timezone", "")
	v.SetDefault("layout", datekit.DefaultLayout)
	v.SetDefault("now", "")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// initConfig reads the config file and DATEKIT_ environment variables.
func (a *app) initConfig() error {
	setDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".datekit")
	}

	a.v.SetEnvPrefix("DATEKIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// initLogging picks the level and format from config/env, then from the
// flags when they were set explicitly.
func (a *app) initLogging(flags *pflag.FlagSet) {
	level := a.v.GetString("logging.level")
	format := a.v.GetString("logging.format")

	if flags.Changed("log-level") {
		level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		format, _ = flags.GetString("log-format")
	}

	a.logger = newLogger(a.stderr, level, format)
	if path := a.v.ConfigFileUsed(); path != "" {
		a.logger.Debug("using config file", "path", path)
	}
}

func (a *app) buildEnv() error {
	opts := []datekit.Option{
		datekit.WithLogger(a.logger),
		datekit.WithLocales(a.v.GetStringSlice("locales")...),
		datekit.WithDefaultLocale(a.v.GetString("locale")),
	}

	if files := a.v.GetStringSlice("locale_files"); len(files) > 0 {
		opts = append(opts, datekit.WithLocaleFiles(files...))
	}

	if zone := a.v.GetString("timezone"); zone != "" {
		opts = append(opts, datekit.WithLocationName(zone))
	}

	if raw := a.v.GetString("now"); raw != "" {
		now, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("invalid --now value %q: %w", raw, err)
		}
		opts = append(opts, datekit.WithClock(func() time.Time { return now }))
	}

	for _, plugin := range []datekit.Plugin{
		customparseformat.Plugin,
		advancedformat.Plugin,
		localizedformat.Plugin,
		quarterofyear.Plugin,
		isoweek.Plugin,
		weekofyear.Plugin,
		dayofyear.Plugin,
		relativetime.Plugin,
		calendar.Plugin,
		comparison.Plugin,
		minmax.Plugin,
		timezone.Plugin,
	} {
		opts = append(opts, datekit.WithPlugin(plugin, nil))
	}

	env, err := datekit.NewEnv(opts...)
	if err != nil {
		return err
	}
	a.env = env
	return nil
}

// date reads one positional input. "now" and "" mean the current instant;
// --from layouts are tried before the default ISO/RFC parsing.
func (a *app) date(input string) (datekit.Date, error) {
	var d datekit.Date
	switch layouts := a.v.GetStringSlice("input_layouts"); {
	case input == "" || strings.EqualFold(input, "now"):
		d = a.env.Now()
	case len(layouts) > 0:
		d = a.env.ParseAny(input, layouts...)
	default:
		d = a.env.New(input)
	}

	if !d.IsValid() {
		return d, fmt.Errorf("%w: %q", errInvalidDate, input)
	}
	return d, nil
}

func (a *app) dates(inputs []string) ([]datekit.Date, error) {
	out := make([]datekit.Date, 0, len(inputs))
	for _, input := range inputs {
		d, err := a.date(input)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (a *app) layout() string {
	if layout := a.v.GetString("layout"); layout != "" {
		return layout
	}
	return datekit.DefaultLayout
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// mustBindPFlag binds a viper key to a cobra flag and panics if binding fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q to key %q: %v", flag.Name, key, err))
	}
}
