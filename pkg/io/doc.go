// Package io reads raw data records for batch ingestion and writes
// diagram artifacts.
//
// # Records
//
// A record file holds homogeneous key-value rows. Three encodings are
// recognized by extension:
//
//	[{"year": 1990, "age": 0, "deaths": 37}]          # .json
//
//	- {year: 1990, age: 0, deaths: 37}                # .yaml / .yml
//
//	year,age,deaths                                   # .csv
//	1990,0,37
//
// Use [ImportRecords] for a path or [ReadRecords] for any io.Reader. Values
// are not coerced here: the diagram's batch ingestion converts the axis
// fields to integers and reports the first row that fails.
//
//	recs, err := io.ImportRecords("deaths.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := d.AddBatch(recs, lexis.BatchKeys{X: "year", Y: "age", Value: "deaths"})
//
// # Scenes
//
// [WriteScene] and [ReadScene] round-trip a [lexis.Scene] through JSON, for
// caching a computed layout or handing it to another tool. [WriteArtifact]
// writes rendered bytes, creating parent directories as needed.
//
// [lexis.Scene]: github.com/matzehuels/lexis/pkg/lexis.Scene
package io
