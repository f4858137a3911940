// Command demo is a minimal interactive exercise of the lineedit
// package: a fuzzy-suggested command prompt with inline completion,
// printing the default keybindings as YAML after an accepted line.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kestrelline/lineedit"
	"github.com/kestrelline/lineedit/internal/termio"
)

var corpus = []string{
	"git status",
	"git commit",
	"git commit --amend",
	"git push",
	"git push --force-with-lease",
	"git log --oneline",
	"git diff",
	"git diff --staged",
	"git checkout main",
	"git rebase -i main",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := initializeLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	out := termio.New(os.Stdout)
	events := termio.NewEventSource(os.Stdin)

	line, err := lineedit.NewBuilder().
		Prompt("> ").
		Completer(lineedit.FuzzyCompleter{Corpus: corpus}).
		Suggester(lineedit.FuzzySuggester{Corpus: corpus}).
		Logger(logger).
		ReadLine(context.Background(), out, events)

	if err != nil {
		if err == lineedit.ErrCancelled {
			fmt.Println("cancelled")
			return nil
		}
		return err
	}

	fmt.Println("you typed:", line)

	exported := lineedit.ExportBindings(lineedit.DefaultBindingsTable(), false, nil)
	yamlText, err := exported.ToYAML()
	if err != nil {
		return err
	}
	fmt.Print(yamlText)
	return nil
}

func initializeLogger() (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	loggerConfig.OutputPaths = []string{"lineedit-demo.log"}
	loggerConfig.ErrorOutputPaths = []string{"lineedit-demo.log"}
	return loggerConfig.Build()
}
