/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

// Command telex replays Telex keystrokes and prints the converted text.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}
