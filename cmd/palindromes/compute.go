package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/n0rdy/palindromes/adapters/httpapi"
	"github.com/n0rdy/palindromes/types"
	"github.com/spf13/cobra"
)

func newComputeCmd(a *app) *cobra.Command {
	var (
		min, max uint64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "compute",
		Aliases: []string{"c"},
		Short:   "Search a range once and print the smallest and the largest palindromic products",
		Example: "  palindromes compute --min 100 --max 999\n  palindromes compute --min 10 --max 99 --json --mode parallel",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.searcher.Search(cmd.Context(), min, max)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			return printText(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Uint64Var(&min, "min", 0, "smallest factor (inclusive)")
	cmd.Flags().Uint64Var(&max, "max", 0, "largest factor (inclusive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")

	return cmd
}

func printText(w io.Writer, res *types.Result) error {
	if res == nil {
		_, err := fmt.Fprintln(w, "none found")
		return err
	}
	_, err := fmt.Fprintf(w, "min %d %s\nmax %d %s\n",
		res.Min.Value(), formatFactors(res.Min), res.Max.Value(), formatFactors(res.Max))
	return err
}

func formatFactors(g *types.PalindromeGroup) string {
	factors := g.Factors()
	parts := make([]string, 0, len(factors))
	for _, p := range factors {
		parts = append(parts, fmt.Sprintf("(%d, %d)", p.A, p.B))
	}
	return strings.Join(parts, " ")
}

func printJSON(w io.Writer, res *types.Result) error {
	enc := json.NewEncoder(w)
	if res == nil {
		return enc.Encode(httpapi.MessageResponse{Message: "none found"})
	}
	return enc.Encode(httpapi.PalindromesResponse{
		Min: httpapi.NewGroupResponse(res.Min),
		Max: httpapi.NewGroupResponse(res.Max),
	})
}
