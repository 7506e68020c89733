// disasm loads a flat binary file into a 64 KiB bus image and disassembles
// it to stdout starting at a given address.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/drewwalton19216801/sharp6502/disassemble"
	"github.com/drewwalton19216801/sharp6502/memory"
)

func main() {
	app := &cli.App{
		Name:    "disasm",
		Usage:   "Disassemble a flat 6502 binary image",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "address to start disassembling at",
				Value:   0x0000,
			},
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "offset into the bus image to load the file at",
				Value:   0x0000,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "number of lines to disassemble; 0 disassembles the whole loaded file",
				Value:   0,
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("exactly one filename is required", 86)
	}
	fn := c.Args().Get(0)

	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return cli.Exit(fmt.Sprintf("can't read %s: %v", fn, err), 1)
	}

	offset := c.Int("offset")
	max := 1<<16 - offset
	if len(data) > max {
		fmt.Fprintf(os.Stderr, "file too long for offset %d, truncating to 64K\n", offset)
		data = data[:max]
	}

	bus := memory.NewBus()
	bus.PowerOn()
	for i, b := range data {
		bus.Write(uint16(offset+i), b)
	}

	pc := uint16(c.Int("start"))
	count := c.Int("count")
	if count <= 0 {
		count = len(data)
	}

	fmt.Printf("0x%.2X bytes loaded at offset 0x%.4X, starting at PC 0x%.4X\n", len(data), offset, pc)
	for _, line := range disassemble.Range(pc, count, bus) {
		fmt.Println(line)
	}
	return nil
}
