// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pcopy/internal/config"
	"github.com/temirov/pcopy/internal/output"
	"github.com/temirov/pcopy/internal/services/clipboard"
	"github.com/temirov/pcopy/internal/tokenizer"
	"github.com/temirov/pcopy/internal/utils"
)

const (
	treeFlagName      = "tree"
	clipboardFlagName = "clipboard"
	tokensFlagName    = "tokens"
	modelFlagName     = "model"
	engineFlagName    = "engine"
	configFlagName    = "config"
	versionFlagName   = "version"
	globalFlagName    = "global"
	forceFlagName     = "force"

	versionTemplate      = "pcopy version: %s\n"
	rootUse              = "pcopy [tree] [path]"
	rootShortDescription = "Merge text files and copy them to the clipboard"
	rootLongDescription  = `pcopy walks a directory, skips ignored and binary files, and merges the
remaining text files into PROMPT.txt at the directory root. The result is also
copied to the clipboard.

Pass "tree" as an argument or use --tree to prefix the document with a file
tree. Patterns in .pcopyignore at the target root exclude additional files.

Boolean flags accept true, false, yes or no as the next argument. Other
spellings (on, off, 1, 0) must be attached with "=", as in --clipboard=off.`
	rootUsageExample = `  # Bundle the current directory
  pcopy

  # Bundle ./service with a file tree and without touching the clipboard
  pcopy tree ./service --clipboard=false

  # Report an estimated token count
  pcopy --tokens --model gpt-4o .`

	initUse              = "init"
	initShortDescription = "Write a default configuration file"
	initLongDescription  = `Write the default configuration to ./.pcopy.yaml, or with --global to the
pcopy directory under the XDG configuration home.`
	initWrittenFormat = "Configuration written to %s\n"

	treeFlagDescription      = "include the file tree in the document"
	clipboardFlagDescription = "copy the document to the clipboard"
	tokensFlagDescription    = "report an estimated token count of the document"
	modelFlagDescription     = "tokenizer model to use for token counting"
	engineFlagDescription    = "pattern engine: gitignore or simple"
	configFlagDescription    = "path to a configuration file"
	versionFlagDescription   = "display application version"
	globalFlagDescription    = "write the global configuration instead of the local one"
	forceFlagDescription     = "overwrite an existing configuration file"

	// workingDirectoryErrorFormat reports failure to determine the working directory.
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// Dependencies carries the collaborators of the CLI. Zero values select the
// production implementations.
type Dependencies struct {
	Logger             *zap.Logger
	Stdout             io.Writer
	Styled             bool
	WorkingDirectory   string
	GlobalConfigPath   string
	Copier             clipboard.Copier
	ClipboardAvailable func() bool
	NewCounter         func(tokenizer.Config) (tokenizer.Counter, string, error)
}

func (dependencies Dependencies) withDefaults() (Dependencies, error) {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Stdout == nil {
		dependencies.Stdout = os.Stdout
		dependencies.Styled = output.DetectStyling(os.Stdout)
	}
	if dependencies.WorkingDirectory == "" {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return Dependencies{}, fmt.Errorf(workingDirectoryErrorFormat, err)
		}
		dependencies.WorkingDirectory = workingDirectory
	}
	if dependencies.ClipboardAvailable == nil {
		dependencies.ClipboardAvailable = clipboard.Available
	}
	if dependencies.NewCounter == nil {
		dependencies.NewCounter = tokenizer.NewCounter
	}
	return dependencies, nil
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	includeTree     bool
	copyToClipboard bool
	countTokens     bool
	tokenModel      string
	patternEngine   string
	configPath      string
	showVersion     bool
}

// Execute runs the pcopy application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{Logger: logger})
	rootCommand.SetArgs(joinToggleValues(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolvedDependencies, dependencyError := dependencies.withDefaults()
			if dependencyError != nil {
				return dependencyError
			}
			if options.showVersion {
				fmt.Fprintf(resolvedDependencies.Stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			_, runError := runCopy(command, options, arguments, resolvedDependencies)
			return runError
		},
	}
	if dependencies.Stdout != nil {
		rootCommand.SetOut(dependencies.Stdout)
	}

	flagSet := rootCommand.Flags()
	registerToggleFlags(flagSet,
		toggleFlag{name: treeFlagName, usage: treeFlagDescription, defaultValue: false, target: &options.includeTree},
		toggleFlag{name: clipboardFlagName, usage: clipboardFlagDescription, defaultValue: true, target: &options.copyToClipboard},
		toggleFlag{name: tokensFlagName, usage: tokensFlagDescription, defaultValue: false, target: &options.countTokens},
		toggleFlag{name: versionFlagName, usage: versionFlagDescription, defaultValue: false, target: &options.showVersion},
	)
	flagSet.StringVar(&options.tokenModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	flagSet.StringVar(&options.patternEngine, engineFlagName, "", engineFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	return rootCommand
}

// createInitCommand builds the init subcommand.
func createInitCommand(dependencies Dependencies) *cobra.Command {
	var writeGlobal bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolvedDependencies, dependencyError := dependencies.withDefaults()
			if dependencyError != nil {
				return dependencyError
			}
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: resolvedDependencies.WorkingDirectory,
				GlobalFilePath:   resolvedDependencies.GlobalConfigPath,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(resolvedDependencies.Stdout, initWrittenFormat, destinationPath)
			return nil
		},
	}
	registerToggleFlags(initCommand.Flags(),
		toggleFlag{name: globalFlagName, usage: globalFlagDescription, defaultValue: false, target: &writeGlobal},
		toggleFlag{name: forceFlagName, usage: forceFlagDescription, defaultValue: false, target: &force},
	)
	return initCommand
}
