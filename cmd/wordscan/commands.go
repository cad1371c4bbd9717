package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *app) uniqueWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uniqueWords <directory>",
		Short: "List the words that occur exactly once in their file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.engine.UniqueWords(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printf(cmd, "Found %d words\n", len(words))
			for _, w := range words {
				printf(cmd, "%s\n", w)
			}
			return nil
		},
	}
}

func (a *app) lineWithMostACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lineWithMostA <directory>",
		Short: "Find the line with the most occurrences of the letter a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.engine.LineWithMostA(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if loc.IsZero() {
				printf(cmd, "No lines found\n")
				return nil
			}
			printf(cmd, "Line with most occurrences of A found at %s\n", loc)
			return nil
		},
	}
}

func (a *app) consonantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consonants <directory> <consonants>",
		Short: "Find a word with exactly the given number of consonants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount("consonants", args[1])
			if err != nil {
				return err
			}
			w, ok, err := a.engine.WordWithConsonants(cmd.Context(), args[0], n)
			if err != nil {
				return err
			}
			if !ok {
				printf(cmd, "No word found with %s consonants.\n", args[1])
				return nil
			}
			printf(cmd, "Found %s in %s:%d\n", w.Word, w.Path, w.Line)
			return nil
		},
	}
}

func (a *app) substringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substring <directory> <substring> <limit>",
		Short: "List up to limit words containing a substring",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseCount("limit", args[2])
			if err != nil {
				return err
			}
			words, err := a.engine.WordsWithSubstring(cmd.Context(), args[0], args[1], limit)
			if err != nil {
				return err
			}
			if len(words) > limit {
				printf(cmd, "WARNING: substring search returned more than %d words!\n", limit)
			}
			for _, w := range words {
				printf(cmd, "%s\n", w)
			}
			return nil
		},
	}
}

// parseCount parses a non-negative integer argument.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, n)
	}
	return n, nil
}
