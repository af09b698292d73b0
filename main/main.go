package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"tabfunc/io"
	"tabfunc/tabulate"
)

func main() {
	var (
		resample      string
		exampleConfig string
	)

	flag.StringVar(
		&resample, "Resample", "",
		"Configuration file for [Resample] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Resample'.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "Resample" {
			log.Fatalf("Unrecognized config type '%s'.", exampleConfig)
		}
		fmt.Println(io.ExampleResampleFile)
	case resample != "":
		resampleMain(resample)
	default:
		log.Fatal("No mode flag given. Try -Resample or -ExampleConfig.")
	}
}

func resampleMain(confFname string) {
	con, err := io.ReadResampleConfig(confFname)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidLogFile() {
		f, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()
		log.SetOutput(f)
	}

	t, err := io.ReadSamples(con.Input)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read %d columns spanning x = [%g, %g] from %s.",
		t.NumX(), t.XMin(), t.XMax(), con.Input,
	)

	out, err := os.Create(con.Output)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer out.Close()

	if err := t.WriteGrid(out); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote resampled grid to %s.", con.Output)

	if con.ValidPlotFile() {
		plotColumns(t, con.PlotFile)
		plt.Execute()
		log.Printf("Wrote column plot to %s.", con.PlotFile)
	}
}

// plotColumns renders the table's columns, value against y with one curve
// per column, to the given image file.
func plotColumns(t *tabulate.Table, fname string) {
	plt.Figure()

	for i := 0; i < t.NumX(); i++ {
		ys := make([]float64, t.NumY(i))
		vals := make([]float64, t.NumY(i))
		for j := range ys {
			ys[j] = t.YAt(i, j)
			vals[j] = t.ValueAt(i, j)
		}
		plt.Plot(ys, vals, plt.LW(2))
	}

	plt.Title(fmt.Sprintf(
		"%d columns, x = [%g, %g]", t.NumX(), t.XMin(), t.XMax(),
	))
	plt.XLabel(`$y$`, plt.FontSize(16))
	plt.YLabel(`$f(x_i, y)$`, plt.FontSize(16))
	plt.SaveFig(fname)
}
