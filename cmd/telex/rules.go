/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"

	"github.com/andodevel/telex-engine/telex"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the Telex rules in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printRules(cmd.OutOrStdout(), telex.Rules())
		},
	}
}

func printRules(out io.Writer, rules []telex.Rule) error {
	var rows = make([][]string, 0, len(rules))
	for i, r := range rules {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Family.String(),
			r.Pattern,
			strconv.Itoa(r.Length),
		})
	}
	var table = gotabulate.Create(rows)
	table.SetHeaders([]string{"#", "Family", "Pattern", "Length"})
	_, err := fmt.Fprint(out, table.Render("simple"))
	return err
}
