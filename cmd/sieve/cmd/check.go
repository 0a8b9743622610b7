package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solatis/sieve/internal/core/api"
	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/filter"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Parse and compile a filter expression against the configured schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	scheme, err := api.BuildScheme(cfg.SchemaFields)
	if err != nil {
		return fmt.Errorf("invalid schema configuration: %w", err)
	}
	if scheme.FieldCount() == 0 {
		return fmt.Errorf("config declares no schema.fields")
	}

	expression := args[0]
	ast, err := scheme.Parse(expression)
	if err != nil {
		var parseErr *filter.ParseError
		if errors.As(err, &parseErr) {
			fmt.Println(expression)
			fmt.Println(caretSpan(parseErr.Pos, parseErr.Len))
			return fmt.Errorf("parse error at offset %d: %s", parseErr.Pos, parseErr.Msg)
		}
		return err
	}

	// Compiling cannot fail on a parsed AST; doing it here mirrors what
	// the service does on save.
	_ = ast.Compile()

	fmt.Printf("ok: %s\n", ast)
	return nil
}

// caretSpan underlines the byte span [pos, pos+length) with carets.
func caretSpan(pos, length int) string {
	if length < 1 {
		length = 1
	}
	return strings.Repeat(" ", pos) + strings.Repeat("^", length)
}
