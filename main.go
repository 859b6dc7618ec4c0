package main

/* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/cmd"
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/miners"
	"github.com/HaloV36/project-folder-Association-Mining/miners/breadth"
	"github.com/HaloV36/project-folder-Association-Mining/miners/depth"
)

func init() {
	cmd.UsageMessage = "armine --help"
	cmd.ExtendedMessage = `
armine - mine frequent itemsets and association rules

$ armine --support=<float> --confidence=<float> [Global Options] \
    <loader> [Loader Options] <input-path> \
    <mode> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <loader> [Loader Options]
      then <input-path> and then <mode>. Changes in ordering are not
      supported.

Note: You may either supply the <input-path> as a regular file or a
      gzipped file. If supplying a gzip file the file extension must be
      '.gz'.

Note: If you don't supply a reporter it defaults to 'log' (or
      'chain log file' when an output dir was given).


Global Options
    -h, --help                view this message
    --loaders                 show the available loaders
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (optional)
                              NB: will overwrite contents of dir
    --support=<float>         minimum support in [0, 1] (required)
    --confidence=<float>      minimum rule confidence in [0, 1]
                              (default .5)
    --recommend=<item>        only show rules whose antecedent contains
                              the item, best first
    -p, --parallelism=<int>   number of workers (default 1, -1 means
                              one per cpu)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Loaders
    csv                       csv with a header row. The tid column is
                              transaction_id, tid, or id (fallback:
                              first column). With an item/items/
                              product/products column the file is long
                              format, one row per (tid, item); item
                              cells may hold comma separated lists.
                              Any other layout is wide format.
    lines                     one transaction per line, items separated
                              by spaces, tid = line number.

    csv Example
        $ armine --support=.2 --confidence=.5 \
            csv --clean ./data/transactions.csv \
            breadth

    csv Options
        -h, help                 view this message
        --clean                  standardize item names and drop empty
                                 and single-item transactions
        --products=<path>        csv of valid products (product_id,
                                 name); items outside it are dropped
                                 during cleaning

    lines Options
        -h, help                 view this message
        --clean                  as for csv

    lines Example file:
        milk bread eggs
        bread butter
        milk bread butter

Modes
    breadth                   levelwise candidate generation and
                              counting over the horizontal
                              representation (Apriori).
    depth                     depth first TID-set intersection search
                              over the vertical representation (Eclat).

    Both modes produce the same frequent itemsets and supports for the
    same input and support threshold; pick whichever runs faster on
    your data.

Reporters
    chain                     chain several reporters together (end the
                              chain with endchain)
    log                       log the frequent patterns
    file                      write the patterns to a file in the
                              output dir
    unique                    takes an "inner reporter" but only passes
                              each distinct pattern once
    count                     write the number of patterns to a file in
                              the output dir

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   the prefix of the name of the file in the
                              output directory to write the patterns

    count Options
        -c, count=<name>      the name of the file in the output
                              directory to write the count

    Examples

        $ armine --support=.2 --confidence=.6 \
            csv ./transactions.csv \
            depth \
            chain log file

        $ armine --support=.2 --confidence=.6 --recommend=milk \
            lines ./baskets.txt \
            breadth \
            count
`
}

func breadthMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return breadth.NewMiner(conf), args
}

func depthMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return depth.NewMiner(conf), args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"breadth": breadthMode,
		"depth":   depthMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:p:",
		[]string{
			"help",
			"output=",
			"loaders", "modes", "reporters",
			"support=",
			"confidence=",
			"recommend=",
			"parallelism=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v breadth %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := -1.0
	confidence := .5
	recommend := ""
	parallelism := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "--recommend":
			recommend = oa.Arg()
		case "-p", "--parallelism":
			parallelism = cmd.ParseInt(oa.Arg())
		case "--loaders":
			fmt.Fprintln(os.Stderr, "Loaders:")
			for k := range cmd.Loaders {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support < 0 || support > 1 {
		fmt.Fprintf(os.Stderr, "You must supply a support in [0, 1] (--support)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if confidence < 0 || confidence > 1 {
		fmt.Fprintf(os.Stderr, "Confidence must be in [0, 1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Output:      output,
		Support:     support,
		Confidence:  confidence,
		Recommend:   recommend,
		Parallelism: parallelism,
	}
	return cmd.Main(args, conf, modes)
}
