package nav

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quillon/waymark/pkg/synth"
	"github.com/quillon/waymark/pkg/vec"
)

// CategoryConfig is one immutable row of the tuning table: how a category
// scans, sounds, and scales with distance. Far↔close ranges are lerped by
// the squared proximity factor.
type CategoryConfig struct {
	MaxDistance float64 // candidates beyond this are excluded outright

	VolLow, VolHigh   float64 // volume at max distance / point blank
	FreqLow, FreqHigh float64 // Hz at max distance / point blank

	// Beacon cadence: slow far away, rapid up close.
	FarInterval, CloseInterval float64

	ScanPeriod  time.Duration // per-category scan cadence
	AnnounceKey string        // message key prefix for zone callouts

	Synth synth.Config
}

// Tuning is the full per-category configuration table.
type Tuning [numCategories]CategoryConfig

// DefaultTuning returns the built-in hand-tuned table. Cheap,
// frequently-relevant categories scan fast; rare fixtures scan on a slow
// cadence.
func DefaultTuning() Tuning {
	return Tuning{
		CategoryBoss: {
			MaxDistance: 80,
			VolLow:      0.22, VolHigh: 0.85,
			FreqLow: 320, FreqHigh: 640,
			FarInterval: 0.50, CloseInterval: 0.06,
			ScanPeriod:  250 * time.Millisecond,
			AnnounceKey: "zone.boss",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceFM,
				BurstLen: 0.07, Attack: 0.004, Decay: 32,
				FMRatio: 2.0, FMIndex: 3.5,
			},
		},
		CategoryElite: {
			MaxDistance: 60,
			VolLow:      0.18, VolHigh: 0.7,
			FreqLow: 380, FreqHigh: 760,
			FarInterval: 0.45, CloseInterval: 0.06,
			ScanPeriod:  300 * time.Millisecond,
			AnnounceKey: "zone.elite",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceChord,
				BurstLen: 0.06, Attack: 0.004, Decay: 34,
				ChordRatio: 1.5,
			},
		},
		CategoryCocoon: {
			MaxDistance: 50,
			VolLow:      0.12, VolHigh: 0.55,
			FreqLow: 220, FreqHigh: 440,
			FarInterval: 0.40, CloseInterval: 0.05,
			ScanPeriod:  1500 * time.Millisecond,
			AnnounceKey: "zone.cocoon",
			Synth: synth.Config{
				Mode: synth.ModeTone,
			},
		},
		CategoryCollectible: {
			MaxDistance: 40,
			VolLow:      0.15, VolHigh: 0.6,
			FreqLow: 620, FreqHigh: 1240,
			FarInterval: 0.35, CloseInterval: 0.04,
			ScanPeriod:  1 * time.Second,
			AnnounceKey: "zone.collectible",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceSine,
				BurstLen: 0.045, Attack: 0.003, Decay: 40,
			},
		},
		CategoryCurrency: {
			MaxDistance: 30,
			VolLow:      0.12, VolHigh: 0.5,
			FreqLow: 900, FreqHigh: 1500,
			FarInterval: 0.30, CloseInterval: 0.04,
			ScanPeriod:  1 * time.Second,
			AnnounceKey: "zone.currency",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceShimmer,
				BurstLen: 0.06, Attack: 0.003, Decay: 30,
			},
		},
		CategoryEscort: {
			MaxDistance: 45,
			VolLow:      0.15, VolHigh: 0.6,
			FreqLow: 300, FreqHigh: 520,
			FarInterval: 0.40, CloseInterval: 0.05,
			ScanPeriod:  250 * time.Millisecond,
			AnnounceKey: "zone.escort",
			Synth: synth.Config{
				Mode: synth.ModeTone,
			},
		},
		CategoryCheckpoint: {
			MaxDistance: 70,
			VolLow:      0.15, VolHigh: 0.6,
			FreqLow: 440, FreqHigh: 880,
			FarInterval: 0.60, CloseInterval: 0.08,
			ScanPeriod:  2 * time.Second,
			AnnounceKey: "zone.checkpoint",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceChord,
				BurstLen: 0.09, Attack: 0.005, Decay: 24,
				ChordRatio: 2.0,
			},
		},
		CategoryMechanism: {
			MaxDistance: 35,
			VolLow:      0.12, VolHigh: 0.5,
			FreqLow: 500, FreqHigh: 900,
			FarInterval: 0.45, CloseInterval: 0.06,
			ScanPeriod:  2 * time.Second,
			AnnounceKey: "zone.mechanism",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceMetal,
				BurstLen: 0.08, Attack: 0.003, Decay: 22,
				ChordRatio: 2.756,
			},
		},
		CategoryHazard: {
			MaxDistance: 25,
			VolLow:      0.25, VolHigh: 0.85,
			FreqLow: 420, FreqHigh: 700,
			FarInterval: 0.30, CloseInterval: 0.04,
			ScanPeriod:  200 * time.Millisecond,
			AnnounceKey: "zone.hazard",
			Synth: synth.Config{
				Mode: synth.ModeAlarm,
				AlarmDur: 1.0, PeakRatio: 1.9,
			},
		},
		CategoryTelegraph: {
			MaxDistance: 30,
			VolLow:      0.4, VolHigh: 0.9,
			FreqLow: 500, FreqHigh: 800,
			FarInterval: 0.25, CloseInterval: 0.04,
			ScanPeriod:  250 * time.Millisecond,
			AnnounceKey: "zone.telegraph",
			Synth: synth.Config{
				Mode: synth.ModeAlarm, Warble: true,
				AlarmDur: 0.7, PeakRatio: 1.6,
			},
		},
		CategoryFootpath: {
			MaxDistance: 20,
			VolLow:      0.10, VolHigh: 0.4,
			FreqLow: 260, FreqHigh: 520,
			FarInterval: 0.25, CloseInterval: 0.03,
			ScanPeriod:  300 * time.Millisecond,
			AnnounceKey: "zone.footpath",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceSweep,
				BurstLen: 0.05, Attack: 0.003, Decay: 36,
			},
		},
		CategoryDoor: {
			MaxDistance: 50,
			VolLow:      0.12, VolHigh: 0.5,
			FreqLow: 200, FreqHigh: 400,
			FarInterval: 0.55, CloseInterval: 0.08,
			ScanPeriod:  2500 * time.Millisecond,
			AnnounceKey: "zone.door",
			Synth: synth.Config{
				Mode: synth.ModeBeacon, Voice: synth.VoiceSine,
				BurstLen: 0.07, Attack: 0.005, Decay: 20,
			},
		},
	}
}

// tuningFile is the YAML override schema. Every field is optional; absent
// fields keep their built-in values.
type tuningFile struct {
	Categories map[string]categoryOverride `yaml:"categories"`
}

type categoryOverride struct {
	MaxDistance   *float64 `yaml:"max_distance"`
	VolLow        *float64 `yaml:"vol_low"`
	VolHigh       *float64 `yaml:"vol_high"`
	FreqLow       *float64 `yaml:"freq_low"`
	FreqHigh      *float64 `yaml:"freq_high"`
	FarInterval   *float64 `yaml:"far_interval"`
	CloseInterval *float64 `yaml:"close_interval"`
	ScanPeriodMS  *int     `yaml:"scan_period_ms"`
}

// LoadTuning reads a YAML override file and applies it on top of the
// built-in table. Out-of-range values are clamped to the same safe ranges
// the generators enforce, never rejected.
func LoadTuning(path string) (Tuning, error) {
	table := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("read tuning: %w", err)
	}
	var tf tuningFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return table, fmt.Errorf("parse tuning: %w", err)
	}

	for name, ov := range tf.Categories {
		cat, ok := CategoryByName(name)
		if !ok {
			return table, fmt.Errorf("unknown category %q in tuning", name)
		}
		cfg := &table[cat]
		if ov.MaxDistance != nil {
			cfg.MaxDistance = vec.Clamp(*ov.MaxDistance, 1, 500)
		}
		if ov.VolLow != nil {
			cfg.VolLow = vec.Clamp01(*ov.VolLow)
		}
		if ov.VolHigh != nil {
			cfg.VolHigh = vec.Clamp01(*ov.VolHigh)
		}
		if ov.FreqLow != nil {
			cfg.FreqLow = vec.Clamp(*ov.FreqLow, synth.MinFrequency, synth.MaxFrequency)
		}
		if ov.FreqHigh != nil {
			cfg.FreqHigh = vec.Clamp(*ov.FreqHigh, synth.MinFrequency, synth.MaxFrequency)
		}
		if ov.FarInterval != nil {
			cfg.FarInterval = vec.Clamp(*ov.FarInterval, synth.MinInterval, synth.MaxInterval)
		}
		if ov.CloseInterval != nil {
			cfg.CloseInterval = vec.Clamp(*ov.CloseInterval, synth.MinInterval, synth.MaxInterval)
		}
		if ov.ScanPeriodMS != nil {
			ms := *ov.ScanPeriodMS
			if ms < 50 {
				ms = 50
			}
			cfg.ScanPeriod = time.Duration(ms) * time.Millisecond
		}
	}
	return table, nil
}
