// Package main sweeps dilution curves: for each stock solute it starts
// from a fixed stock volume and adds water step by step, recording the
// derived pH and ion counts as CSV.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/config"
	"github.com/pthm-cable/phlab/particles"
	"github.com/pthm-cable/phlab/solution"
)

// Row is one point on a dilution curve.
type Row struct {
	Solute      string  `csv:"solute"`
	StockPH     float64 `csv:"stock_ph"`
	WaterAdded  float64 `csv:"water_added"`
	TotalVolume float64 `csv:"total_volume"`
	PH          float64 `csv:"ph"`
	H3O         int     `csv:"h3o"`
	OH          int     `csv:"oh"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	soluteName := flag.String("solute", "", "Sweep a single catalog solute (empty = all)")
	customPH := flag.Float64("custom-ph", -1, "Sweep a synthesized stock at this pH instead of the catalog")
	stock := flag.Float64("stock", 0.5, "Initial stock volume in liters")
	step := flag.Float64("step", 0.01, "Water added per step in liters")
	output := flag.String("output", "titrate.csv", "Output CSV path")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	var stocks []solution.Solute
	switch {
	case *customPH >= 0:
		stocks = []solution.Solute{solution.CustomSolute(chem.ClampPH(*customPH))}
	case *soluteName != "":
		for _, s := range solution.Catalog() {
			if s.Name == *soluteName {
				stocks = []solution.Solute{s}
			}
		}
		if len(stocks) == 0 {
			log.Fatalf("unknown solute %q", *soluteName)
		}
	default:
		stocks = solution.Catalog()
	}

	model := particles.CountModel{
		CountAtNeutral: cfg.Particles.CountAtNeutral,
		MaxCount:       cfg.Particles.MaxCount,
		MinMinority:    cfg.Particles.MinMinority,
		BandMin:        cfg.Particles.BandMin,
		BandMax:        cfg.Particles.BandMax,
		PHDecimals:     cfg.Meter.PHDecimals,
	}

	var rows []Row
	for _, s := range stocks {
		curve, err := sweep(s, cfg, model, *stock, *step)
		if err != nil {
			log.Fatalf("sweep %s: %v", s.Name, err)
		}
		rows = append(rows, curve...)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		log.Fatalf("failed to write CSV: %v", err)
	}
	log.Printf("wrote %d rows to %s", len(rows), *output)
}

// sweep dilutes one stock from stockVolume up to the beaker limit and
// samples the curve at every step.
func sweep(s solution.Solute, cfg *config.Config, model particles.CountModel, stockVolume, step float64) ([]Row, error) {
	sol, err := solution.New(s, solution.Config{
		MaxVolume:           cfg.Beaker.MaxVolume,
		InitialSoluteVolume: stockVolume,
		InitialWaterVolume:  0,
		VolumeDecimals:      cfg.Beaker.VolumeDecimals,
		PHDecimals:          cfg.Meter.PHDecimals,
	})
	if err != nil {
		return nil, err
	}

	var rows []Row
	water := 0.0
	for {
		rows = append(rows, sample(sol, s, water, model))
		if sol.FreeVolume() <= 0 {
			return rows, nil
		}
		sol.AddWater(step)
		water += step
	}
}

func sample(sol *solution.Solution, s solution.Solute, water float64, model particles.CountModel) Row {
	ph := sol.PH()
	display := chem.RoundPH(chem.ClampPH(ph.Value), model.PHDecimals)
	counts := model.Counts(display, ph.Defined)
	return Row{
		Solute:      s.Name,
		StockPH:     s.StockPH,
		WaterAdded:  water,
		TotalVolume: sol.TotalVolume(),
		PH:          ph.Value,
		H3O:         counts.H3O,
		OH:          counts.OH,
	}
}
