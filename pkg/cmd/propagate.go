// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-zircon/pkg/analysis/propagation"
	"github.com/consensys/go-zircon/pkg/binfile"
	"github.com/consensys/go-zircon/pkg/util/field"
	"github.com/consensys/go-zircon/pkg/util/field/bls12_377"
	"github.com/consensys/go-zircon/pkg/util/field/bn254"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var propagateCmd = &cobra.Command{
	Use:   "propagate [flags] program_file",
	Short: "fold and substitute compile-time constants in a typed program.",
	Long: `Read a well-typed, unrolled program (as produced by the front end), fold every
	 provably constant sub-expression to a literal, eliminate constant definitions,
	 and write the rewritten program back out.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			fieldName = GetString(cmd, "field")
			output    = GetString(cmd, "output")
			config    = field.GetConfig(fieldName)
		)
		// Sanity check
		if config == nil {
			fmt.Printf("unknown field \"%s\"\n", fieldName)
			os.Exit(3)
		}
		//
		switch *config {
		case field.BN254:
			runPropagate[bn254.Element](args[0], output)
		case field.BLS12_377:
			runPropagate[bls12_377.Element](args[0], output)
		default:
			fmt.Printf("field %s unsupported for command '%s'\n", fieldName, cmd.Name())
			os.Exit(2)
		}
	},
}

// Run the propagation pass over the program contained in a given file,
// instantiated for a given field, writing the result either to an output
// file or to stdout.
func runPropagate[F field.Element[F]](filename, output string) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Parse binary file into a typed program
	program, err := binfile.Decode[F](bytes)
	//
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	// Apply constant propagation
	nprogram, err := propagation.Program(program)
	//
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(4)
	}
	//
	nbytes, err := binfile.Encode(nprogram)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if output == "" {
		fmt.Println(string(nbytes))
	} else if err := os.WriteFile(output, nbytes, 0644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(propagateCmd)
	propagateCmd.Flags().StringP("output", "o", "", "specify output file.")
}
