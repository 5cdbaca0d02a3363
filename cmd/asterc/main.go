// Command asterc is the Aster CNL compiler frontend's CLI.
package main

import (
	"os"

	"github.com/aster-lang/aster/driver"
)

func main() {
	os.Exit(driver.Execute())
}
