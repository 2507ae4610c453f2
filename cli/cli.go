package cli

import (
	"encoding/json"
	"os"
	"strings"

	"cdf-scope/cdf"
	"cdf-scope/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Inspect     *InspectCmd     `arg:"subcommand:inspect"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	InteractiveCmd struct{}
	InspectCmd     struct {
		Path string `arg:"positional,required" help:"path to a NetCDF classic file" placeholder:"dataset.nc"`
		Raw  bool   `help:"print the decoded struct as-is instead of the ordered rendering"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Peek inside self-describing array files.\n",
			"A CLI utility to decode the header of NetCDF classic (CDF-1) and",
			"64-bit offset (CDF-2) files and print it as JSON for inspection.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartInspecting(path string, raw bool) {
	if !CheckExistence(path) {
		println("Input file does not exist!")
		return
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		println("Error happened reading file at: " + path)
		return
	}
	if !cdf.IsCDFFile(fileBytes) {
		println("Input file does not look like a NetCDF classic file. Nothing to inspect.")
		return
	}

	header, err := cdf.Decode(fileBytes)
	if err != nil {
		println("Error happened decoding the header: " + err.Error())
		return
	}

	renderedBytes := []byte(nil)
	if raw {
		renderedBytes, err = json.MarshalIndent(header, "", "  ")
	} else {
		renderedBytes, err = json.MarshalIndent(cdf.ToOrderedMap(*header), "", "  ")
	}
	if err != nil {
		println("Error happened rendering the header: " + err.Error())
		return
	}
	println(string(renderedBytes))
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if args.Inspect != nil {
		StartInspecting(args.Inspect.Path, args.Inspect.Raw)
	} else {
		ui.Start()
	}
}
