package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"homeinsight-analyzer/internal/carousel"
	"homeinsight-analyzer/internal/chart"
	"homeinsight-analyzer/internal/export"
	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/internal/paginate"
	"homeinsight-analyzer/internal/render"
	"homeinsight-analyzer/internal/search"
)

func main() {
	cfg := LoadConfiguration()
	app := NewApp(cfg)
	defer app.cleanup()

	fmt.Println("Real Estate Investment Analyzer")
	fmt.Println("Type 'help' for the command list.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "state":
			app.runSearch(search.StateMode, args)
		case "zip":
			app.runSearch(search.ZipMode, args)
		case "page":
			if len(args) != 1 {
				fmt.Println("usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("usage: page <n>")
				continue
			}
			app.gotoPage(n)
		case "next":
			app.gotoPage(app.Controller.State().Page + 1)
		case "prev":
			app.gotoPage(app.Controller.State().Page - 1)
		case "export":
			app.exportResults()
		case "charts":
			app.renderCharts()
		case "eval":
			app.runEvaluation(scanner)
		case "docs":
			fmt.Printf("API documentation: %s\n", app.Client.DocsURL())
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println("  state <XX>     search a two-letter state code (e.g. state MA)")
	fmt.Println("  zip <#####>    analyze a five-digit ZIP code (e.g. zip 02108)")
	fmt.Println("  page <n>       jump to a results page (state search)")
	fmt.Println("  next / prev    step through results pages")
	fmt.Println("  charts         render MSA scatter charts for the searched state")
	fmt.Println("  export         save the current results as CSV")
	fmt.Println("  eval           browse model evaluation charts")
	fmt.Println("  docs           show the API documentation URL")
	fmt.Println("  quit           leave")
}

// runSearch drives one mode switch, query entry and submit, then waits
// for the fetch to complete and renders the outcome.
func (a *App) runSearch(mode search.Mode, args []string) {
	if len(args) != 1 {
		if mode == search.StateMode {
			fmt.Println("usage: state <two-letter code>")
		} else {
			fmt.Println("usage: zip <five-digit code>")
		}
		return
	}

	a.Controller.SetMode(mode)
	a.Controller.SetQuery(args[0])

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if !a.Controller.Submit(ctx) {
		if mode == search.StateMode {
			fmt.Println("Enter a two-letter state code (e.g., MA for Massachusetts).")
		} else {
			fmt.Println("Enter a 5-digit ZIP code (e.g., 02108).")
		}
		return
	}

	fmt.Println("Loading...")
	timeout := time.Duration(a.Config.API.TimeoutSeconds+5) * time.Second
	select {
	case <-a.Controller.Updates():
	case <-time.After(timeout):
		fmt.Println("Timed out waiting for results.")
		return
	}

	a.renderResults()
}

func (a *App) renderResults() {
	state := a.Controller.State()

	switch state.Phase {
	case search.Error:
		render.RenderError(os.Stdout, state.Error)
	case search.Success:
		switch results := state.Results.(type) {
		case models.StateResults:
			page := paginate.Paginate(results.Listings, state.Page, paginate.PageSize)
			render.RenderListings(os.Stdout, page)
		case models.ZipResult:
			render.RenderAnalysis(os.Stdout, results.Analysis)
		}
	default:
		fmt.Println("No results yet. Run a state or zip search first.")
	}
}

// gotoPage clamps n to the valid page range before asking the
// controller; paging is only meaningful for state results.
func (a *App) gotoPage(n int) {
	state := a.Controller.State()
	results, ok := state.Results.(models.StateResults)
	if !ok || state.Phase != search.Success {
		fmt.Println("Paging is available after a state search.")
		return
	}

	totalPages := paginate.Paginate(results.Listings, 1, paginate.PageSize).TotalPages
	if n < 1 {
		n = 1
	}
	if n > totalPages {
		n = totalPages
	}

	if a.Controller.SetPage(n) {
		a.renderResults()
	}
}

// exportResults writes the current raw result set as a CSV artifact.
func (a *App) exportResults() {
	state := a.Controller.State()
	if state.Phase != search.Success || state.Results == nil {
		fmt.Println("Nothing to export yet.")
		return
	}

	var records []export.Record
	switch results := state.Results.(type) {
	case models.StateResults:
		records = export.ListingRecords(results.Listings)
	case models.ZipResult:
		records = export.AnalysisRecords(results.Analysis)
	}

	path, err := export.Download(export.ToCSV(records), export.Filename(state.Query), a.Config.Export.Dir)
	if err != nil {
		render.RenderError(os.Stdout, err.Error())
		return
	}
	fmt.Printf("Saved %s\n", path)
}

// renderCharts fetches the MSA points for the searched state and draws
// the three correlation scatter plots.
func (a *App) renderCharts() {
	state := a.Controller.State()
	if state.Mode != search.StateMode || state.Phase != search.Success {
		fmt.Println("Charts are available after a state search.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.Config.API.TimeoutSeconds)*time.Second)
	defer cancel()

	points, err := a.Client.MsiAnalysis(ctx, state.Query)
	if err != nil {
		render.RenderError(os.Stdout, fmt.Sprintf("Failed to fetch MSI data: %v", err))
		return
	}

	fmt.Printf("MSI Investment Analysis for %s\n\n", state.Query)
	for _, series := range chart.BindSeries(points) {
		render.RenderScatter(os.Stdout, series)
	}
}

// runEvaluation fetches the evaluation charts once and opens a small
// navigation loop over them.
func (a *App) runEvaluation(scanner *bufio.Scanner) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.Config.API.TimeoutSeconds)*time.Second)
	defer cancel()

	charts, err := a.Client.ModelEvaluation(ctx)
	if err != nil {
		render.RenderError(os.Stdout, "Failed to load model evaluation data")
		return
	}

	wheel := carousel.New(charts)
	if wheel.Len() == 0 {
		fmt.Println("No evaluation charts available.")
		return
	}

	for {
		current, _ := wheel.Current()
		pos, total := wheel.Position()
		fmt.Printf("\nChart %d of %d: %s\n%s\n", pos, total, current.Title, current.Description)
		fmt.Print("eval (n=next, p=prev, save, back)> ")

		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "n", "next":
			wheel.Next()
		case "p", "prev":
			wheel.Previous()
		case "save":
			a.saveChart(current)
		case "back", "q":
			return
		}
	}
}

// saveChart decodes the current chart image and writes it next to the
// CSV exports.
func (a *App) saveChart(c models.EvaluationChart) {
	data, err := base64.StdEncoding.DecodeString(c.Image)
	if err != nil {
		render.RenderError(os.Stdout, fmt.Sprintf("Failed to decode chart image: %v", err))
		return
	}

	name := strings.ReplaceAll(strings.ToLower(c.Title), " ", "_") + ".png"
	path := filepath.Join(a.Config.Export.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		render.RenderError(os.Stdout, fmt.Sprintf("Failed to save chart: %v", err))
		return
	}
	fmt.Printf("Saved %s\n", path)
}
