/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) 2018 Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/golang/glog"
)

// Toolkits often focus a child window without WM_CLASS; walk up at most
// this many parents looking for one.
const maxWindowDepth = 8

// x11GetFocusWindowClass returns the WM_CLASS of the focused window as
// "instance:class", or "" when there is no X display.
func x11GetFocusWindowClass() string {
	conn, err := xgb.NewConn()
	if err != nil {
		glog.V(1).Infof("x11: %v", err)
		return ""
	}
	defer conn.Close()

	focus, err := xproto.GetInputFocus(conn).Reply()
	if err != nil {
		glog.V(1).Infof("x11: GetInputFocus: %v", err)
		return ""
	}
	var win = focus.Focus
	for i := 0; i < maxWindowDepth && win != xproto.WindowNone; i++ {
		prop, err := xproto.GetProperty(conn, false, win, xproto.AtomWmClass, xproto.AtomString, 0, 256).Reply()
		if err == nil && prop != nil && len(prop.Value) > 0 {
			return parseWMClass(prop.Value)
		}
		tree, err := xproto.QueryTree(conn, win).Reply()
		if err != nil || tree.Parent == tree.Root {
			break
		}
		win = tree.Parent
	}
	return ""
}

// parseWMClass turns the NUL separated WM_CLASS property into
// "instance:class".
func parseWMClass(value []byte) string {
	var parts = strings.Split(strings.TrimRight(string(value), "\x00"), "\x00")
	return strings.Join(parts, ":")
}

func inWhiteList(list []string, classes string) bool {
	if classes == "" {
		return false
	}
	for _, item := range list {
		for _, class := range strings.Split(classes, ":") {
			if item != "" && strings.EqualFold(item, class) {
				return true
			}
		}
		if item == classes {
			return true
		}
	}
	return false
}
