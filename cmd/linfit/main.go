// Command linfit fits a least squares line through two lists of numbers.
//
//	linfit fit --x "1 2 3" --y "2 4 6" --out fit.lfit --compression zstd
//	linfit analyze --x "1 2 3 4" --y "1 4 9 16"
//	linfit inspect fit.lfit
//
// It exits with status 2 when the numbers cannot be fitted and 1 on any
// other error.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if isInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
