package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"zc-features/internal/colstat"
	"zc-features/internal/enrich"
	"zc-features/internal/model"
	"zc-features/internal/resample"
	"zc-features/internal/saver"
	"zc-features/internal/timeslice"
)

// Pipeline holds the dependencies of one batch run.
type Pipeline struct {
	Config *Config
	Source BarSource
	Saver  saver.Saver
	Params enrich.Params
}

// Run builds the bar table, optionally slices and resamples it, enriches
// it into feature matrices and saves them. A run report is written to the
// output directory whether the run succeeds or not.
func (p *Pipeline) Run(ctx context.Context) (rep Report, err error) {
	cfg := p.Config
	rep = Report{
		Source:    p.Source.Name(),
		Format:    p.Saver.Extension(),
		Params:    p.Params,
		Offset:    p.Params.Offset.String(),
		StartedAt: time.Now().UTC(),
	}
	defer func() {
		rep.Elapsed = time.Since(rep.StartedAt).Round(time.Millisecond).String()
		if werr := writeRunReport(cfg.OutputDir, rep, err); werr != nil {
			slog.Warn("could not write run report", "error", werr)
		}
	}()

	if err = os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return rep, fmt.Errorf("create output dir: %w", err)
	}

	bars, err := p.Source.Bars(ctx)
	if err != nil {
		return rep, fmt.Errorf("load bars from %s: %w", p.Source.Name(), err)
	}
	rep.Bars = len(bars)
	if _, ok := p.Source.(*ContractSource); ok {
		if err = (saver.CSVSaver{}).SaveBars(bars, cfg.CombinedOutPath()); err != nil {
			return rep, fmt.Errorf("save combined bars: %w", err)
		}
		rep.Combined = cfg.CombinedOutPath()
		slog.Info("combined bars saved", "path", rep.Combined, "bars", len(bars))
	}

	from, to, sliced, err := cfg.TimeRange()
	if err != nil {
		return rep, err
	}
	if sliced {
		if cfg.RangeCount > 0 {
			bars = timeslice.FirstN(bars, from, cfg.RangeCount, true)
			if len(bars) > 0 {
				to = bars[len(bars)-1].Time()
			}
		} else {
			bars = timeslice.Between(bars, from, to, true)
		}
		slog.Info("time range applied", "from", from.Format(model.TimeLayout), "to", to.Format(model.TimeLayout), "bars", len(bars))
	}
	rep.SlicedBars = len(bars)

	if cfg.StatAttr != "" {
		if rep.Stat, err = columnStat(bars, cfg.StatAttr, cfg.StatMethod); err != nil {
			return rep, err
		}
	}

	if cfg.ResamplePeriod != "" {
		if rep.Resampled, err = p.resample(bars, from, to, sliced); err != nil {
			return rep, err
		}
	}

	slog.Info("enriching", "bars", len(bars), "window", p.Params.Window, "step_g", p.Params.StepG,
		"group", p.Params.GroupSize, "step_h", p.Params.StepH, "offset", p.Params.Offset)
	matrices, err := enrich.DataEnrich(bars, p.Params)
	if err != nil {
		return rep, fmt.Errorf("enrich: %w", err)
	}
	rep.Matrices = len(matrices)

	out := filepath.Join(cfg.OutputDir, p.featuresName())
	if err = p.Saver.Save(matrices, out); err != nil {
		return rep, fmt.Errorf("save features: %w", err)
	}
	rep.Output = out
	slog.Info("features saved", "path", out, "matrices", len(matrices))
	return rep, nil
}

func (p *Pipeline) resample(bars []model.Bar, from, to time.Time, sliced bool) (string, error) {
	period, err := resample.ParsePeriod(p.Config.ResamplePeriod)
	if err != nil {
		return "", err
	}
	if !sliced && len(bars) > 0 {
		from, to = bars[0].Time(), bars[len(bars)-1].Time()
	}
	periods, err := resample.ByPeriod(bars, from, to, period, true)
	if err != nil {
		return "", fmt.Errorf("resample: %w", err)
	}
	path := filepath.Join(p.Config.OutputDir, fmt.Sprintf("bars_%s.%s", period, p.Saver.Extension()))
	if err := p.Saver.SaveBars(periods, path); err != nil {
		return "", fmt.Errorf("save resampled bars: %w", err)
	}
	slog.Info("resampled bars saved", "path", path, "period", string(period), "rows", len(periods))
	return path, nil
}

func columnStat(bars []model.Bar, attr, method string) (*StatReport, error) {
	res, err := colstat.Compute(bars, attr, method)
	if err != nil {
		return nil, fmt.Errorf("column stat: %w", err)
	}
	st := &StatReport{Attr: attr, Method: method}
	if res.Series == nil {
		st.Value = finite(res.Scalar)
	} else {
		st.Points = len(res.Series)
		if n := len(res.Series); n > 0 {
			st.Last = finite(res.Series[n-1])
		}
	}
	slog.Info("column stat", "attr", attr, "method", method, "bars", len(bars))
	return st, nil
}

// featuresName returns features_{start}_{end}_{offset}.ext
func (p *Pipeline) featuresName() string {
	end := "end"
	if p.Params.End >= 0 {
		end = fmt.Sprint(p.Params.End)
	}
	return fmt.Sprintf("features_%d_%s_%s.%s", p.Params.Start, end, p.Params.Offset, p.Saver.Extension())
}
