package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/parquet-go"
)

type Sale struct {
	Product  string  `parquet:"product"`
	Region   string  `parquet:"region"`
	Sales    float64 `parquet:"sales"`
	Quantity int32   `parquet:"quantity"`
	InStock  bool    `parquet:"in_stock"`
	Note     *string `parquet:"note,optional"`
}

func main() {
	promo := "promo"
	sales := []Sale{
		{Product: "Apple", Region: "North", Sales: 100, Quantity: 10, InStock: true, Note: &promo},
		{Product: "Banana", Region: "South", Sales: 150, Quantity: 15, InStock: false},
		{Product: "Orange", Region: "North", Sales: 200, Quantity: 15, InStock: true},
		{Product: "Apple", Region: "East", Sales: 75.5, Quantity: 8, InStock: true},
		{Product: "Kiwi", Region: "West", Sales: 42.25, Quantity: 3, InStock: false},
	}

	file, err := os.Create("sales.parquet")
	if err != nil {
		log.Fatal().Err(err).Msg("create sales.parquet")
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Sale](file)
	defer writer.Close()

	if _, err := writer.Write(sales); err != nil {
		log.Fatal().Err(err).Msg("write rows")
	}

	log.Info().Int("rows", len(sales)).Msg("generated sales.parquet")
}
