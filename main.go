// Copyright (C) 2026 the buildvendor authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/vendor-tools/buildvendor/buildvendor"
)

var log = logging.MustGetLogger("buildvendor")

var (
	root = flag.String("C", ".",
		"project root directory")
	noAbort = flag.Bool("no-abort", false,
		"warn instead of aborting on uncommitted vendor changes")
	vendorCmd = flag.String("vendoring-cmd", "",
		"vendoring tool invocation, space separated (default \"vendoring sync\")")
	debug = flag.Bool("debug", false,
		"show debugging output")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] pre|post\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr,
		"Run 'pre' before assembling the artifact and 'post' afterwards.")
	flag.PrintDefaults()
}

func setupLogging() {
	format := logging.MustStringFormatter(`%{level}: %{message}`)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	if *debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	setupLogging()

	hook := buildvendor.NewHook(*root)
	hook.AbortOnChange = !*noAbort
	if *vendorCmd != "" {
		hook.VendorCommand = strings.Fields(*vendorCmd)
	}

	var err error
	switch flag.Arg(0) {
	case "pre":
		err = hook.Initialize()
	case "post":
		err = hook.Finalize()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
