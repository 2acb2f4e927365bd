/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package main

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andodevel/telex-engine/telex"
)

type rootOptions struct {
	charset string
}

func newRootCmd() *cobra.Command {
	var opts = &rootOptions{}
	var rootCmd = &cobra.Command{
		Use:           "telex",
		Short:         "Type Vietnamese with Telex keystrokes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !telex.IsValidCharset(opts.charset) {
				return errors.Errorf("unknown charset %q, expected one of: %s",
					opts.charset, strings.Join(telex.GetCharsetNames(), ", "))
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	rootCmd.PersistentFlags().StringVar(&opts.charset, "charset", telex.UNICODE,
		"output charset: "+strings.Join(telex.GetCharsetNames(), ", "))
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(newTypeCmd(opts))
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}
