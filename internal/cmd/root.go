package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modmeta/cli/internal/config"
	"github.com/modmeta/cli/internal/kmod"
	"github.com/modmeta/cli/internal/output"
	"github.com/modmeta/cli/internal/report"
)

var (
	// Field-filter flags
	authorFlag      bool
	descriptionFlag bool
	licenseFlag     bool
	parametersFlag  bool
	filenameFlag    bool
	fieldFlag       string

	// Rendering flags
	nullFlag bool

	// Module location flags
	kversionFlag string
	basedirFlag  string

	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	modmetaConfig  *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the modmeta CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modmeta [options] <modulename|filename>...",
		Short: "Show kernel module metadata",
		Long: `modmeta extracts and prints the descriptive metadata embedded in kernel
module files: author, license, description, parameters, aliases and
version information.

Each argument names either a module file or a module name/alias to be
resolved against the modules directory of the running kernel (override
with --set-version and --basedir). Reports go to stdout as key/value
text; diagnostics go to stderr.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runRoot,
	}

	rootCmd.Flags().BoolVarP(&authorFlag, "author", "a", false, `Print only "author"`)
	rootCmd.Flags().BoolVarP(&descriptionFlag, "description", "d", false, `Print only "description"`)
	rootCmd.Flags().BoolVarP(&licenseFlag, "license", "l", false, `Print only "license"`)
	rootCmd.Flags().BoolVarP(&parametersFlag, "parameters", "p", false, `Print only "parm"`)
	rootCmd.Flags().BoolVarP(&filenameFlag, "filename", "n", false, `Print only "filename"`)
	rootCmd.Flags().StringVarP(&fieldFlag, "field", "F", "", "Print only the provided FIELD")
	rootCmd.Flags().BoolVarP(&nullFlag, "null", "0", false, `Use \0 instead of \n as the record separator`)
	rootCmd.Flags().StringVarP(&kversionFlag, "set-version", "k", "", "Use VERSION instead of the running kernel's release (env: MODMETA_KVERSION)")
	rootCmd.Flags().StringVarP(&basedirFlag, "basedir", "b", "", "Use DIR as filesystem root for /lib/modules (env: MODMETA_BASEDIR)")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: MODMETA_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Increase output verbosity")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Don't fail here - a broken config file must not stop a
		// command that doesn't need it.
		output.Debug("config load error", "error", err)
		loadedConfig = config.DefaultConfig()
	}
	modmetaConfig = loadedConfig

	resolvedConfig = config.ResolveAll(config.ResolveOptions{
		BasedirFlag:  basedirFlag,
		KversionFlag: kversionFlag,
		Config:       modmetaConfig,
	})

	// Build LogConfig with precedence: flag > config > default
	logCfg := output.LogConfig{
		Verbose: verboseFlag || modmetaConfig.Log.Verbose,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if modmetaConfig.Log.Timestamps != nil {
		logCfg.Timestamps = modmetaConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", configFlag,
		"basedir", resolvedConfig.Basedir.Value,
		"basedir_source", resolvedConfig.Basedir.Source,
		"kversion", resolvedConfig.Kversion.Value,
		"kversion_source", resolvedConfig.Kversion.Source,
	)

	return nil
}

// fieldFilter returns the single field the output is restricted to, or ""
// for the full report. An explicit --field wins over the shorthand flags.
func fieldFilter() string {
	switch {
	case fieldFlag != "":
		return fieldFlag
	case authorFlag:
		return "author"
	case descriptionFlag:
		return "description"
	case licenseFlag:
		return "license"
	case parametersFlag:
		return report.KeyParm
	case filenameFlag:
		return report.KeyFilename
	}
	return ""
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return NewExitError(errors.New("missing module or filename"), ExitGeneralError)
	}

	ctx, err := kmod.New(kmod.Options{
		Basedir:  GetBasedir(),
		Kversion: GetKversion(),
	})
	if err != nil {
		return err
	}
	output.Debug("resolving modules", "dir", ctx.Dir())

	opts := report.Options{
		Field: fieldFilter(),
		Null:  nullFlag,
	}

	w := bufio.NewWriter(cmd.OutOrStdout())

	// Every identifier is attempted; the first failure decides the exit
	// code but never short-circuits the run.
	var firstErr error
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, ident := range args {
		mods, err := ctx.Resolve(ident)
		if err != nil {
			output.Error("module not found", "name", ident, "error", err)
			fail(err)
			continue
		}

		for _, mod := range mods {
			malformed, err := report.Render(w, mod.Path, mod.Info, opts)
			for _, m := range malformed {
				output.Error("skipping malformed metadata record", "module", mod.Name(), "error", m)
				fail(m)
			}
			if err != nil {
				output.Error("could not read module metadata", "module", mod.Name(), "error", err)
				fail(fmt.Errorf("%w: %w", ErrRetrieval, err))
			}
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if firstErr != nil {
		exitErr := NewExitError(firstErr, ExitCodeFromError(firstErr))
		exitErr.Logged = true
		return exitErr
	}
	return nil
}

// GetBasedir returns the resolved filesystem root for /lib/modules.
func GetBasedir() string {
	if resolvedConfig != nil {
		return resolvedConfig.Basedir.Value
	}
	return basedirFlag
}

// GetKversion returns the resolved kernel release, or "" for the running
// kernel's.
func GetKversion() string {
	if resolvedConfig != nil {
		return resolvedConfig.Kversion.Value
	}
	return kversionFlag
}
