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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BambooEngine/goibus/ibus"
	"github.com/godbus/dbus"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	ComponentName = "org.freedesktop.IBus.Telex"
	EngineName    = "Telex"
	Version       = "0.2.0"
)

func main() {
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var launchedByIBus bool
	var rootCmd = &cobra.Command{
		Use:           "ibus-telex",
		Short:         "Telex input method engine for IBus",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !launchedByIBus {
				return errors.New("ibus-telex is started by ibus-daemon, run it with --ibus")
			}
			return serve()
		},
	}
	rootCmd.Flags().BoolVar(&launchedByIBus, "ibus", false, "the engine was launched by ibus-daemon")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	return rootCmd
}

func serve() error {
	var bus = ibus.NewBus()
	bus.RequestName(ComponentName, 0)
	var conn = bus.GetDbusConn()
	ibus.NewFactory(conn, IBusTelexEngineCreator)
	glog.Infof("%s %s is ready", ComponentName, Version)

	var sig = make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	glog.Infof("received %s, exiting", <-sig)
	return nil
}

func IBusTelexEngineCreator(conn *dbus.Conn, engineName string) dbus.ObjectPath {
	var objectPath = dbus.ObjectPath(fmt.Sprintf("/org/freedesktop/IBus/Engine/%s/%d", engineName, time.Now().UnixNano()))
	config, err := LoadConfig(engineName)
	if err != nil {
		glog.Warningf("%v, using default config", err)
		config = DefaultConfig()
	}
	var engine = newIBusTelexEngine(ibus.BaseEngine(conn, objectPath), engineName, config)
	ibus.PublishEngine(conn, objectPath, engine)
	glog.Infof("created engine %s at %s", engineName, objectPath)
	return objectPath
}
