package main

import (
	"personbench/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the person table. Run from the repository root.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.PersonModel{})

	g.Execute()
}
