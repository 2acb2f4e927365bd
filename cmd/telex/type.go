/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andodevel/telex-engine/internal/textfield"
	"github.com/andodevel/telex-engine/telex"
)

func newTypeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "type [keystrokes...]",
		Short: "Replay keystrokes through the Telex engine",
		Long: `Replay keystrokes through the Telex engine, one rune at a time, and print
the resulting text. Arguments are joined with spaces. Without arguments
every line of standard input is typed into a fresh field.`,
		Example: `  telex type coos gawsng
  echo "Vieejt Nam" | telex type`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return typeLine(cmd.OutOrStdout(), strings.Join(args, " "), opts.charset)
			}
			return typeLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts.charset)
		},
	}
}

func typeLines(in io.Reader, out io.Writer, charset string) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		if err := typeLine(out, scanner.Text(), charset); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading keystrokes")
}

func typeLine(out io.Writer, keys string, charset string) error {
	var field = textfield.New(textfield.Callbacks{
		OnChange: func(text string, caret int) {
			glog.V(2).Infof("buffer [%s] caret %d", text, caret)
		},
	})
	field.TypeString(keys)
	_, err := fmt.Fprintln(out, telex.Encode(charset, field.Text()))
	return errors.Wrap(err, "writing output")
}
