package main

import (
	"fmt"
	"os"

	"github.com/maseology/mmio"
	"github.com/maseology/shelfx"
)

func main() {

	const ctlFP = "M:/shelf/seabass15.shelfx"

	fp := ctlFP
	if len(os.Args) > 1 {
		fp = os.Args[1]
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	shelfx.BuildTransect(fp)
}
