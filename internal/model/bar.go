package model

import "time"

// TimeLayout is the timestamp format of contract and combined bar files.
const TimeLayout = "2006-01-02 15:04:05"

// Bar represents one minute bar of a futures contract.
// Shared by contract ingestion, the enrichment core and the savers (csv, json, parquet).
type Bar struct {
	Timestamp   int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds, exchange wall clock stored as UTC
	Open        float64 `json:"o" parquet:"o"`
	High        float64 `json:"h" parquet:"h"`
	Low         float64 `json:"l" parquet:"l"`
	Close       float64 `json:"c" parquet:"c"`
	TotalVolume float64 `json:"tv" parquet:"tv"`
	Volume      float64 `json:"v" parquet:"v"` // first difference of TotalVolume
}

// Time returns the bar timestamp as a UTC time.
func (b Bar) Time() time.Time {
	return time.UnixMilli(b.Timestamp).UTC()
}

// Features returns the five columns read by the enrichment core,
// in Columns order.
func (b Bar) Features() Vector {
	return Vector{b.Open, b.High, b.Low, b.Close, b.TotalVolume}
}
